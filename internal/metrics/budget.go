// Package metrics computes derived views over AppState: time budgets,
// historical aggregates, goal progress, nudges, and the triage signal.
// Every function is a pure, total function of the state and a wall-clock
// instant; nothing here mutates state or performs I/O.
package metrics

import (
	"time"

	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// Budget computes the day's minute arithmetic for the active session. All
// numbers are zero when no session is active. RemainingMinutes clamps at
// zero; FreeMinutes keeps its sign because the over-committed magnitude
// feeds trend data.
func Budget(state *models.AppState, now time.Time) models.TimeBudget {
	sess := state.CurrentSession()
	if sess == nil {
		return models.TimeBudget{}
	}

	total := timeutil.MinutesBetween(sess.WakeTime, sess.PlannedSleepTime)

	allocated := 0
	incompleteLoad := 0
	for _, a := range sess.Activities {
		allocated += a.PlannedMinutes
		if !a.Completed {
			incompleteLoad += a.PlannedMinutes
		}
	}

	remaining := timeutil.MinutesBetween(now, sess.PlannedSleepTime)
	if remaining < 0 {
		remaining = 0
	}

	// Free time answers "how much unscheduled time is left before bedtime
	// given what's left to do": remaining wall-clock minus incomplete load,
	// not allocated-vs-total.
	return models.TimeBudget{
		TotalAvailableMinutes: total,
		AllocatedMinutes:      allocated,
		RemainingMinutes:      remaining,
		FreeMinutes:           remaining - incompleteLoad,
	}
}

// RemainingMinutes returns the clamped minutes until the active session's
// planned sleep, zero when no session is active.
func RemainingMinutes(state *models.AppState, now time.Time) int {
	return Budget(state, now).RemainingMinutes
}

// NeedsMorningSetup reports whether the user still has morning setup to do.
func NeedsMorningSetup(state *models.AppState) bool {
	sess := state.CurrentSession()
	return sess == nil || !sess.IsSetupComplete
}
