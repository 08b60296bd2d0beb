package models

import "time"

// TimerPhase represents the phase of an activity timer
type TimerPhase string

const (
	TimerRunning TimerPhase = "running"
	TimerPaused  TimerPhase = "paused"
)

// TimerState tracks elapsed wall-clock time across pause/resume cycles.
// The absence of a timer is represented by a nil *TimerState on the
// activity, so "completed with a live timer" is not constructible through
// the reducer.
type TimerState struct {
	Phase              TimerPhase `json:"phase"`
	StartedAt          time.Time  `json:"startedAt,omitempty"`
	AccumulatedSeconds int64      `json:"accumulatedSeconds"`
	PausedAt           *time.Time `json:"pausedAt,omitempty"`
}

// IsRunning reports whether the timer is currently accumulating time.
func (t *TimerState) IsRunning() bool {
	return t != nil && t.Phase == TimerRunning
}

// ElapsedSeconds returns the total elapsed seconds as of now. Elapsed time
// is recomputed from wall-clock timestamps so it survives process restarts;
// it is never negative.
func (t *TimerState) ElapsedSeconds(now time.Time) int64 {
	if t == nil {
		return 0
	}
	elapsed := t.AccumulatedSeconds
	if t.Phase == TimerRunning && !t.StartedAt.IsZero() && now.After(t.StartedAt) {
		elapsed += int64(now.Sub(t.StartedAt) / time.Second)
	}
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// Clone returns a copy of the timer state, or nil for a nil receiver.
func (t *TimerState) Clone() *TimerState {
	if t == nil {
		return nil
	}
	c := *t
	if t.PausedAt != nil {
		paused := *t.PausedAt
		c.PausedAt = &paused
	}
	return &c
}
