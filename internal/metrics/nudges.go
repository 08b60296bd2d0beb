package metrics

import (
	"fmt"
	"math"
	"time"

	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/timeutil"
)

const (
	// defaultSuggestedMinutes is proposed when no history exists for a goal.
	defaultSuggestedMinutes = 30
	// eveningFreeThreshold suppresses the evening nudge when less than an
	// hour of free time remains.
	eveningFreeThreshold = 60
	// triageThresholdMinutes triggers the triage signal.
	triageThresholdMinutes = 30
)

// MorningNudgeFor summarizes goal status around morning setup, with one
// suggested activity per behind goal. Nil once setup is complete.
func MorningNudgeFor(state *models.AppState, now time.Time) *models.MorningNudge {
	sess := state.CurrentSession()
	if sess != nil && sess.IsSetupComplete {
		return nil
	}

	progress := GoalProgressAll(state, now)
	var suggestions []models.SuggestedActivity
	for _, gp := range behindGoals(progress) {
		unit := "times"
		if gp.Goal.TargetType == models.TargetDuration {
			unit = "min"
		}
		suggestions = append(suggestions, models.SuggestedActivity{
			Name:             gp.Goal.ActivityPattern,
			CategoryID:       goalCategory(gp.Goal),
			SuggestedMinutes: suggestedMinutes(gp),
			Reason:           fmt.Sprintf("Weekly goal: %d/%d %s", gp.CurrentValue, gp.TargetValue, unit),
			GoalID:           gp.Goal.ID,
		})
	}

	return &models.MorningNudge{
		GoalProgress: progress,
		Suggestions:  suggestions,
		DayOfWeek:    now.Weekday().String(),
	}
}

// EveningNudgeFor proposes how to spend remaining free time once setup is
// complete. Suppressed entirely under an hour of free time; celebratory
// when nothing is behind; otherwise one fitting suggestion per behind goal,
// capped at the available free time.
func EveningNudgeFor(state *models.AppState, now time.Time) *models.EveningNudge {
	sess := state.CurrentSession()
	if sess == nil || !sess.IsSetupComplete {
		return nil
	}

	free := Budget(state, now).FreeMinutes
	if free < eveningFreeThreshold {
		return nil
	}

	progress := GoalProgressAll(state, now)
	behind := behindGoals(progress)
	if len(behind) == 0 {
		return &models.EveningNudge{
			Kind:             models.EveningOnTrack,
			RemainingMinutes: free,
			BehindGoals:      []models.GoalProgress{},
			Message:          "You're crushing it this week! All weekly goals on track.",
		}
	}

	var suggestions []models.SuggestedActivity
	for _, gp := range behind {
		minutes := suggestedMinutes(gp)
		if minutes > free {
			continue
		}
		unit := "times"
		if gp.Goal.TargetType == models.TargetDuration {
			unit = "min"
		}
		suggestions = append(suggestions, models.SuggestedActivity{
			Name:             gp.Goal.ActivityPattern,
			CategoryID:       goalCategory(gp.Goal),
			SuggestedMinutes: minutes,
			Reason:           fmt.Sprintf("Need %d more %s this week", gp.Remaining, unit),
			GoalID:           gp.Goal.ID,
		})
	}

	hours := math.Round(float64(free)/60*10) / 10
	return &models.EveningNudge{
		Kind:                models.EveningBehindSchedule,
		RemainingMinutes:    free,
		BehindGoals:         behind,
		SuggestedActivities: suggestions,
		Message:             fmt.Sprintf("You have %.1f hours of free time and %d goal(s) behind schedule.", hours, len(behind)),
	}
}

// Triage reports the crisis state: setup complete, incomplete activities
// remain, and thirty minutes or less until planned sleep.
func Triage(state *models.AppState, now time.Time) *models.TriageState {
	sess := state.CurrentSession()
	if sess == nil || !sess.IsSetupComplete {
		return nil
	}

	incomplete := sess.IncompleteActivities()
	if len(incomplete) == 0 {
		return nil
	}
	remaining := RemainingMinutes(state, now)
	if remaining > triageThresholdMinutes {
		return nil
	}

	total := 0
	for _, a := range incomplete {
		total += a.PlannedMinutes
	}
	return &models.TriageState{
		CurrentTime:            now,
		PlannedSleepTime:       sess.PlannedSleepTime,
		RemainingMinutes:       remaining,
		IncompleteActivities:   incomplete,
		TotalIncompleteMinutes: total,
	}
}

// ThisWeeksBacklog filters backlog items belonging to the current week
// bucket.
func ThisWeeksBacklog(state *models.AppState, now time.Time) []models.BacklogItem {
	weekOf := timeutil.WeekOf(now, state.Settings.WeekStartsOn)
	var out []models.BacklogItem
	for _, item := range state.Backlog {
		if item.WeekOf == weekOf {
			out = append(out, item)
		}
	}
	return out
}

func goalCategory(goal models.Goal) string {
	if goal.CategoryID != "" {
		return goal.CategoryID
	}
	return models.FallbackCategoryID
}

func suggestedMinutes(gp models.GoalProgress) int {
	if gp.AverageDuration != nil {
		return *gp.AverageDuration
	}
	return defaultSuggestedMinutes
}
