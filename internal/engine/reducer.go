// Package engine implements the pure state-transition reducer over AppState
// and the dependency-injected store that owns the current state.
package engine

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/timeutil"
)

// Apply produces the next state for an action. The input state is never
// mutated. Invalid input (no active session, unknown IDs, out-of-range
// moves) is absorbed as a no-op and the input state is returned unchanged.
func Apply(state *models.AppState, action Action, now time.Time) *models.AppState {
	if state == nil {
		state = models.NewAppState()
	}

	switch a := action.(type) {
	case StartNewDay:
		if a.WakeTime.IsZero() || a.PlannedSleepTime.IsZero() {
			return state
		}
		next := state.Clone()
		for _, sess := range next.DaySessions {
			sess.IsActive = false
		}
		session := &models.DaySession{
			ID:               newID(),
			WakeTime:         a.WakeTime,
			PlannedSleepTime: timeutil.NormalizeSleepTime(a.WakeTime, a.PlannedSleepTime),
			IsActive:         true,
			Activities:       []models.Activity{},
			CreatedAt:        now,
		}
		next.DaySessions[session.ID] = session
		next.CurrentSessionID = session.ID
		return next

	case UpdateSleepTime:
		return withCurrentSession(state, func(sess *models.DaySession) {
			if !a.PlannedSleepTime.IsZero() {
				sess.PlannedSleepTime = timeutil.NormalizeSleepTime(sess.WakeTime, a.PlannedSleepTime)
			}
		})

	case CompleteMorningSetup:
		return withCurrentSession(state, func(sess *models.DaySession) {
			sess.IsSetupComplete = true
		})

	case AddActivity:
		return withCurrentSession(state, func(sess *models.DaySession) {
			sess.Activities = append(sess.Activities, models.Activity{
				ID:             newID(),
				Name:           a.Name,
				PlannedMinutes: a.PlannedMinutes,
				CategoryID:     a.CategoryID,
				Notes:          a.Notes,
				DaySessionID:   sess.ID,
				Order:          len(sess.Activities),
			})
		})

	case UpdateActivity:
		return withCurrentSession(state, func(sess *models.DaySession) {
			for i := range sess.Activities {
				if sess.Activities[i].ID == a.Activity.ID {
					sess.Activities[i] = a.Activity.Clone()
					return
				}
			}
		})

	case DeleteActivity:
		return withCurrentSession(state, func(sess *models.DaySession) {
			sess.Activities = compactOrder(removeActivity(sess.Activities, a.ActivityID))
		})

	case CompleteActivity:
		return withActivity(state, a.ActivityID, func(act *models.Activity) {
			actual := act.PlannedMinutes
			if a.ActualMinutes != nil {
				actual = *a.ActualMinutes
			}
			act.Completed = true
			act.ActualMinutes = &actual
			act.Timer = nil
		})

	case MoveToBacklog:
		sess := state.CurrentSession()
		if sess == nil {
			return state
		}
		var moved *models.Activity
		for i := range sess.Activities {
			if sess.Activities[i].ID == a.ActivityID {
				moved = &sess.Activities[i]
				break
			}
		}
		if moved == nil {
			return state
		}
		next := state.Clone()
		weekOf := timeutil.WeekOf(now, next.Settings.WeekStartsOn)
		merged := false
		for i := range next.Backlog {
			item := &next.Backlog[i]
			if strings.EqualFold(item.ActivityName, moved.Name) && item.WeekOf == weekOf {
				item.PostponedCount++
				merged = true
				break
			}
		}
		if !merged {
			next.Backlog = append(next.Backlog, models.BacklogItem{
				ID:                   newID(),
				ActivityName:         moved.Name,
				CategoryID:           moved.CategoryID,
				PlannedMinutes:       moved.PlannedMinutes,
				PostponedCount:       1,
				OriginalDaySessionID: sess.ID,
				AddedToBacklogAt:     now,
				WeekOf:               weekOf,
			})
		}
		nextSess := next.DaySessions[next.CurrentSessionID]
		nextSess.Activities = compactOrder(removeActivity(nextSess.Activities, a.ActivityID))
		return next

	case ReorderActivities:
		return withCurrentSession(state, func(sess *models.DaySession) {
			replacement := make([]models.Activity, len(a.Activities))
			for i, act := range a.Activities {
				replacement[i] = act.Clone()
			}
			sess.Activities = replacement
		})

	case MoveActivity:
		sess := state.CurrentSession()
		if sess == nil {
			return state
		}
		index := -1
		for i := range sess.Activities {
			if sess.Activities[i].ID == a.ActivityID {
				index = i
				break
			}
		}
		if index < 0 {
			return state
		}
		target := index + 1
		if a.Direction == MoveUp {
			target = index - 1
		}
		if target < 0 || target >= len(sess.Activities) {
			return state
		}
		return withCurrentSession(state, func(sess *models.DaySession) {
			sess.Activities[index], sess.Activities[target] = sess.Activities[target], sess.Activities[index]
			sess.Activities = compactOrder(sess.Activities)
		})

	case StartTimer:
		return withActivity(state, a.ActivityID, func(act *models.Activity) {
			if act.Timer.IsRunning() {
				// Restarting a running timer would silently drop the
				// in-flight interval since the last start.
				return
			}
			var accumulated int64
			if act.Timer != nil {
				accumulated = act.Timer.AccumulatedSeconds
			}
			act.Timer = &models.TimerState{
				Phase:              models.TimerRunning,
				StartedAt:          now,
				AccumulatedSeconds: accumulated,
			}
		})

	case PauseTimer:
		return withActivity(state, a.ActivityID, func(act *models.Activity) {
			if !act.Timer.IsRunning() {
				return
			}
			paused := now
			act.Timer = &models.TimerState{
				Phase:              models.TimerPaused,
				AccumulatedSeconds: act.Timer.ElapsedSeconds(now),
				PausedAt:           &paused,
			}
		})

	case ResumeTimer:
		return withActivity(state, a.ActivityID, func(act *models.Activity) {
			if act.Timer == nil {
				return
			}
			act.Timer = &models.TimerState{
				Phase:              models.TimerRunning,
				StartedAt:          now,
				AccumulatedSeconds: act.Timer.AccumulatedSeconds,
			}
		})

	case StopTimer:
		return withActivity(state, a.ActivityID, func(act *models.Activity) {
			actual := a.ActualMinutes
			act.ActualMinutes = &actual
			act.Completed = true
			act.Timer = nil
		})

	case AddGoal:
		next := state.Clone()
		next.Goals = append(next.Goals, models.Goal{
			ID:              newID(),
			Name:            a.Name,
			CategoryID:      a.CategoryID,
			TargetType:      a.TargetType,
			TargetValue:     a.TargetValue,
			Frequency:       a.Frequency,
			ActivityPattern: a.ActivityPattern,
			CreatedAt:       now,
			IsActive:        true,
		})
		return next

	case UpdateGoal:
		next := state.Clone()
		for i := range next.Goals {
			if next.Goals[i].ID == a.Goal.ID {
				next.Goals[i] = a.Goal
				return next
			}
		}
		return state

	case DeleteGoal:
		next := state.Clone()
		goals := next.Goals[:0]
		for _, g := range next.Goals {
			if g.ID != a.GoalID {
				goals = append(goals, g)
			}
		}
		next.Goals = goals
		return next

	case AddFromBacklog:
		sess := state.CurrentSession()
		if sess == nil {
			return state
		}
		var item *models.BacklogItem
		for i := range state.Backlog {
			if state.Backlog[i].ID == a.BacklogItemID {
				item = &state.Backlog[i]
				break
			}
		}
		if item == nil {
			return state
		}
		next := state.Clone()
		nextSess := next.DaySessions[next.CurrentSessionID]
		nextSess.Activities = append(nextSess.Activities, models.Activity{
			ID:                   newID(),
			Name:                 item.ActivityName,
			CategoryID:           item.CategoryID,
			PlannedMinutes:       item.PlannedMinutes,
			DaySessionID:         nextSess.ID,
			Order:                len(nextSess.Activities),
			PostponedCount:       item.PostponedCount,
			OriginalDaySessionID: item.OriginalDaySessionID,
		})
		next.Backlog = removeBacklogItem(next.Backlog, a.BacklogItemID)
		return next

	case RemoveFromBacklog:
		next := state.Clone()
		next.Backlog = removeBacklogItem(next.Backlog, a.BacklogItemID)
		return next

	case UpdateSettings:
		next := state.Clone()
		next.Settings = next.Settings.Apply(a.Patch)
		return next

	case EndDay:
		if state.CurrentSession() == nil {
			return state
		}
		next := state.Clone()
		sess := next.DaySessions[next.CurrentSessionID]
		actualSleep := now
		sess.IsActive = false
		sess.IsReconciled = true
		sess.ActualSleepTime = &actualSleep
		next.CurrentSessionID = ""
		return next

	case LoadState:
		if a.State == nil {
			return state
		}
		return a.State.Clone()
	}

	return state
}

func newID() string {
	return uuid.New().String()
}

// withCurrentSession clones the state and applies fn to the active session.
// No-op when there is no active session.
func withCurrentSession(state *models.AppState, fn func(*models.DaySession)) *models.AppState {
	if state.CurrentSession() == nil {
		return state
	}
	next := state.Clone()
	fn(next.DaySessions[next.CurrentSessionID])
	return next
}

// withActivity clones the state and applies fn to the matching activity in
// the active session. No-op when the session or activity is missing.
func withActivity(state *models.AppState, activityID string, fn func(*models.Activity)) *models.AppState {
	sess := state.CurrentSession()
	if sess == nil {
		return state
	}
	found := false
	for i := range sess.Activities {
		if sess.Activities[i].ID == activityID {
			found = true
			break
		}
	}
	if !found {
		return state
	}
	next := state.Clone()
	nextSess := next.DaySessions[next.CurrentSessionID]
	for i := range nextSess.Activities {
		if nextSess.Activities[i].ID == activityID {
			fn(&nextSess.Activities[i])
			break
		}
	}
	return next
}

func removeActivity(activities []models.Activity, id string) []models.Activity {
	out := activities[:0]
	for _, a := range activities {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}

// compactOrder reassigns dense 0..n-1 order ranks in existing relative order.
func compactOrder(activities []models.Activity) []models.Activity {
	for i := range activities {
		activities[i].Order = i
	}
	return activities
}

func removeBacklogItem(backlog []models.BacklogItem, id string) []models.BacklogItem {
	out := backlog[:0]
	for _, b := range backlog {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
