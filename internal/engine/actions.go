package engine

import (
	"time"

	"github.com/ynaht/ynaht/internal/models"
)

// Action is the sealed set of state transitions the reducer understands.
// Adding a variant is a compile-time obligation: the reducer switch in
// Apply must handle it.
type Action interface {
	isAction()
}

// StartNewDay deactivates any active session and opens a new one with the
// given wake and planned sleep instants.
type StartNewDay struct {
	WakeTime         time.Time
	PlannedSleepTime time.Time
}

// UpdateSleepTime changes the active session's planned bedtime.
type UpdateSleepTime struct {
	PlannedSleepTime time.Time
}

// CompleteMorningSetup marks the active session's setup as done.
type CompleteMorningSetup struct{}

// AddActivity appends a new activity to the active session.
type AddActivity struct {
	Name           string
	PlannedMinutes int
	CategoryID     string
	Notes          string
}

// UpdateActivity replaces the activity with a matching ID in place.
type UpdateActivity struct {
	Activity models.Activity
}

// DeleteActivity removes an activity and recompacts order ranks.
type DeleteActivity struct {
	ActivityID string
}

// CompleteActivity marks an activity done, recording actual minutes
// (planned minutes when nil) and clearing any timer.
type CompleteActivity struct {
	ActivityID    string
	ActualMinutes *int
}

// MoveToBacklog removes an activity from the session and records (or
// increments) the matching backlog item for the current week.
type MoveToBacklog struct {
	ActivityID string
}

// ReorderActivities replaces the session's activity list wholesale. The
// caller supplies a valid dense order sequence.
type ReorderActivities struct {
	Activities []models.Activity
}

// MoveDirection is the direction of a neighbor swap.
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// MoveActivity swaps an activity with its neighbor, clamping at the list
// boundaries.
type MoveActivity struct {
	ActivityID string
	Direction  MoveDirection
}

// StartTimer starts an activity timer. Starting an already-running timer
// is a no-op so in-flight elapsed time is never dropped.
type StartTimer struct {
	ActivityID string
}

// PauseTimer banks elapsed seconds and stops the clock.
type PauseTimer struct {
	ActivityID string
}

// ResumeTimer restarts a paused timer without resetting banked seconds.
type ResumeTimer struct {
	ActivityID string
}

// StopTimer completes the activity with the supplied final minutes and
// clears the timer entirely.
type StopTimer struct {
	ActivityID    string
	ActualMinutes int
}

// AddGoal creates a new active goal.
type AddGoal struct {
	Name            string
	CategoryID      string
	TargetType      models.GoalTargetType
	TargetValue     int
	Frequency       models.GoalFrequency
	ActivityPattern string
}

// UpdateGoal replaces the goal with a matching ID.
type UpdateGoal struct {
	Goal models.Goal
}

// DeleteGoal removes a goal.
type DeleteGoal struct {
	GoalID string
}

// AddFromBacklog reinserts a backlog item into the active session as a new
// activity, carrying postponement provenance, and consumes the item.
type AddFromBacklog struct {
	BacklogItemID string
}

// RemoveFromBacklog discards a backlog item without reinserting it.
type RemoveFromBacklog struct {
	BacklogItemID string
}

// UpdateSettings shallow-merges a partial settings update.
type UpdateSettings struct {
	Patch models.SettingsPatch
}

// EndDay closes the active session: deactivates it, marks it reconciled,
// and stamps the actual sleep time.
type EndDay struct{}

// LoadState replaces the whole state, used by initial load and sync merge.
type LoadState struct {
	State *models.AppState
}

func (StartNewDay) isAction()          {}
func (UpdateSleepTime) isAction()      {}
func (CompleteMorningSetup) isAction() {}
func (AddActivity) isAction()          {}
func (UpdateActivity) isAction()       {}
func (DeleteActivity) isAction()       {}
func (CompleteActivity) isAction()     {}
func (MoveToBacklog) isAction()        {}
func (ReorderActivities) isAction()    {}
func (MoveActivity) isAction()         {}
func (StartTimer) isAction()           {}
func (PauseTimer) isAction()           {}
func (ResumeTimer) isAction()          {}
func (StopTimer) isAction()            {}
func (AddGoal) isAction()              {}
func (UpdateGoal) isAction()           {}
func (DeleteGoal) isAction()           {}
func (AddFromBacklog) isAction()       {}
func (RemoveFromBacklog) isAction()    {}
func (UpdateSettings) isAction()       {}
func (EndDay) isAction()               {}
func (LoadState) isAction()            {}
