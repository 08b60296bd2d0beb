package export

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ynaht/ynaht/internal/models"
)

// writeRow quotes every field unconditionally. encoding/csv only quotes
// fields that need it, which breaks consumers of the historical format.
func writeRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}

func varianceField(a models.Activity) string {
	if a.ActualMinutes == nil {
		return ""
	}
	return strconv.Itoa(*a.ActualMinutes - a.PlannedMinutes)
}

func actualField(a models.Activity) string {
	if a.ActualMinutes == nil {
		return ""
	}
	return strconv.Itoa(*a.ActualMinutes)
}

// SessionCSV renders one session's activities, including notes.
func SessionCSV(session *models.DaySession) string {
	var b strings.Builder
	writeRow(&b, []string{"Activity", "Category", "Planned (min)", "Actual (min)", "Variance", "Notes"})

	for _, a := range session.Activities {
		writeRow(&b, []string{
			a.Name,
			a.CategoryID,
			strconv.Itoa(a.PlannedMinutes),
			actualField(a),
			varianceField(a),
			a.Notes,
		})
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// AllSessionsCSV renders every session's activities, one row per
// activity, with sessions ordered by wake time.
func AllSessionsCSV(state *models.AppState) string {
	sessions := make([]*models.DaySession, 0, len(state.DaySessions))
	for _, s := range state.DaySessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].WakeTime.Before(sessions[j].WakeTime)
	})

	var b strings.Builder
	writeRow(&b, []string{"Date", "Wake Time", "Sleep Time", "Activity", "Category", "Planned (min)", "Actual (min)", "Variance"})

	for _, s := range sessions {
		date := s.WakeTime.Format("2006-01-02")
		wake := s.WakeTime.Format("15:04")
		sleep := s.PlannedSleepTime.Format("15:04")

		for _, a := range s.Activities {
			writeRow(&b, []string{
				date,
				wake,
				sleep,
				a.Name,
				a.CategoryID,
				strconv.Itoa(a.PlannedMinutes),
				actualField(a),
				varianceField(a),
			})
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}
