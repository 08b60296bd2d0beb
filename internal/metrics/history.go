package metrics

import (
	"math"
	"sort"
	"strings"

	"github.com/ynaht/ynaht/internal/models"
)

// HistoricalActivities groups activities across all sessions by
// case-insensitive name and aggregates duration, frequency, and
// planned-vs-actual variance. Results are sorted by name for stable output.
func HistoricalActivities(state *models.AppState) []models.HistoricalActivity {
	type bucket struct {
		totalMinutes  int
		count         int
		categoryID    string
		lastUsed      models.DaySession
		varianceSum   int
		varianceCount int
	}

	buckets := make(map[string]*bucket)
	for _, sess := range state.DaySessions {
		for _, activity := range sess.Activities {
			key := strings.ToLower(activity.Name)
			b, ok := buckets[key]
			if !ok {
				b = &bucket{categoryID: activity.CategoryID, lastUsed: *sess}
				buckets[key] = b
			}
			b.totalMinutes += activity.EffectiveMinutes()
			b.count++
			if sess.CreatedAt.After(b.lastUsed.CreatedAt) {
				b.lastUsed = *sess
				b.categoryID = activity.CategoryID
			}
			if activity.ActualMinutes != nil {
				b.varianceSum += *activity.ActualMinutes - activity.PlannedMinutes
				b.varianceCount++
			}
		}
	}

	out := make([]models.HistoricalActivity, 0, len(buckets))
	for name, b := range buckets {
		h := models.HistoricalActivity{
			Name:           name,
			AverageMinutes: roundDiv(b.totalMinutes, b.count),
			Occurrences:    b.count,
			CategoryID:     b.categoryID,
			LastUsed:       b.lastUsed.CreatedAt,
		}
		if b.varianceCount > 0 {
			variance := roundDiv(b.varianceSum, b.varianceCount)
			h.AverageVariance = &variance
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// SuggestionFor returns the historical aggregate whose name matches the
// given activity name exactly (case-insensitive), or nil. Used for
// autocomplete and the "usually takes N min" insight.
func SuggestionFor(state *models.AppState, name string) *models.HistoricalActivity {
	if name == "" {
		return nil
	}
	for _, h := range HistoricalActivities(state) {
		if strings.EqualFold(h.Name, name) {
			copied := h
			return &copied
		}
	}
	return nil
}

// roundDiv rounds a/b to the nearest integer with halves rounding toward
// positive infinity, so an average variance of -0.5 lands at 0, not -1.
func roundDiv(a, b int) int {
	return int(math.Floor(float64(a)/float64(b) + 0.5))
}
