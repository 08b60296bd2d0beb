package metrics

import (
	"strings"
	"time"

	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// Hysteresis bands around the expected pace. A goal is behind only when it
// trails by more than behindSlack points and ahead only when it leads by at
// least aheadLead, so status does not flap near the boundary.
const (
	behindSlack = 10.0
	aheadLead   = 20.0
)

// GoalProgressAll derives progress for every active goal within its current
// period bucket. Only activities that are completed or carry a recorded
// actual count toward progress. Matching is case-insensitive substring of
// the goal pattern against the activity name; an activity matching several
// goals counts toward each of them independently.
func GoalProgressAll(state *models.AppState, now time.Time) []models.GoalProgress {
	history := HistoricalActivities(state)

	var out []models.GoalProgress
	for _, goal := range state.Goals {
		if !goal.IsActive {
			continue
		}
		out = append(out, progressFor(state, goal, history, now))
	}
	return out
}

func progressFor(state *models.AppState, goal models.Goal, history []models.HistoricalActivity, now time.Time) models.GoalProgress {
	start, end, periodLen, daysElapsed := periodWindow(now, goal.Frequency, state.Settings.WeekStartsOn)

	currentValue := 0
	for _, sess := range state.DaySessions {
		if !timeutil.WithinInterval(sess.WakeTime, start, end) {
			continue
		}
		for _, activity := range sess.Activities {
			if !matchesPattern(activity.Name, goal.ActivityPattern) {
				continue
			}
			if !activity.Completed && activity.ActualMinutes == nil {
				continue
			}
			if goal.TargetType == models.TargetCount {
				currentValue++
			} else {
				currentValue += activity.EffectiveMinutes()
			}
		}
	}

	percentage := 0.0
	if goal.TargetValue > 0 {
		percentage = float64(currentValue) / float64(goal.TargetValue) * 100
		if percentage > 100 {
			percentage = 100
		}
	}
	remaining := goal.TargetValue - currentValue
	if remaining < 0 {
		remaining = 0
	}

	expected := float64(daysElapsed+1) / float64(periodLen) * 100

	var status models.GoalStatus
	switch {
	case percentage >= 100:
		status = models.StatusComplete
	case percentage < expected-behindSlack:
		status = models.StatusBehind
	case percentage >= expected+aheadLead:
		status = models.StatusAhead
	default:
		status = models.StatusOnTrack
	}

	progress := models.GoalProgress{
		Goal:         goal,
		CurrentValue: currentValue,
		TargetValue:  goal.TargetValue,
		Percentage:   percentage,
		Status:       status,
		Remaining:    remaining,
	}
	for _, h := range history {
		if matchesPattern(h.Name, goal.ActivityPattern) {
			avg := h.AverageMinutes
			progress.AverageDuration = &avg
			break
		}
	}
	return progress
}

// periodWindow returns the bucket bounds, length in days, and full days
// elapsed for a goal frequency.
func periodWindow(now time.Time, freq models.GoalFrequency, weekStartsOn int) (start, end time.Time, periodLen, daysElapsed int) {
	switch freq {
	case models.FrequencyDaily:
		start = timeutil.StartOfDay(now)
		return start, start.AddDate(0, 0, 1).Add(-time.Nanosecond), 1, 0
	case models.FrequencyMonthly:
		start = timeutil.StartOfMonth(now)
		return start, start.AddDate(0, 1, 0).Add(-time.Nanosecond), timeutil.DaysInMonth(now), now.Day() - 1
	default: // weekly
		start = timeutil.StartOfWeek(now, weekStartsOn)
		return start, timeutil.EndOfWeek(now, weekStartsOn), 7, timeutil.DaysIntoWeek(now, weekStartsOn)
	}
}

func matchesPattern(name, pattern string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(pattern))
}

// behindGoals filters progress entries classified behind.
func behindGoals(progress []models.GoalProgress) []models.GoalProgress {
	var out []models.GoalProgress
	for _, gp := range progress {
		if gp.Status == models.StatusBehind {
			out = append(out, gp)
		}
	}
	return out
}
