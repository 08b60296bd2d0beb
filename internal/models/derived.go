package models

import "time"

// GoalStatus classifies progress against the expected pace for the period.
type GoalStatus string

const (
	StatusBehind   GoalStatus = "behind"
	StatusOnTrack  GoalStatus = "on-track"
	StatusAhead    GoalStatus = "ahead"
	StatusComplete GoalStatus = "complete"
)

// HistoricalActivity aggregates same-named activities across all sessions.
type HistoricalActivity struct {
	Name           string    `json:"name"`
	AverageMinutes int       `json:"averageMinutes"`
	Occurrences    int       `json:"occurrences"`
	CategoryID     string    `json:"categoryId"`
	LastUsed       time.Time `json:"lastUsed"`
	// AverageVariance is mean(actual - planned) over entries with a recorded
	// actual; nil when no entry has one.
	AverageVariance *int `json:"averageVariance,omitempty"`
}

// GoalProgress is the derived progress of one active goal within its
// current period bucket.
type GoalProgress struct {
	Goal            Goal       `json:"goal"`
	CurrentValue    int        `json:"currentValue"`
	TargetValue     int        `json:"targetValue"`
	Percentage      float64    `json:"percentage"`
	Status          GoalStatus `json:"status"`
	Remaining       int        `json:"remaining"`
	AverageDuration *int       `json:"averageDuration,omitempty"`
}

// SuggestedActivity is a nudge proposal derived from a behind goal.
type SuggestedActivity struct {
	Name             string `json:"name"`
	CategoryID       string `json:"categoryId"`
	SuggestedMinutes int    `json:"suggestedMinutes"`
	Reason           string `json:"reason"`
	GoalID           string `json:"goalId,omitempty"`
	BacklogItemID    string `json:"backlogItemId,omitempty"`
}

// MorningNudge is the goal-status summary shown around morning setup.
type MorningNudge struct {
	GoalProgress []GoalProgress      `json:"goalProgress"`
	Suggestions  []SuggestedActivity `json:"suggestions"`
	DayOfWeek    string              `json:"dayOfWeek"`
}

// EveningNudgeKind discriminates the evening nudge variants.
type EveningNudgeKind string

const (
	EveningOnTrack        EveningNudgeKind = "on-track"
	EveningBehindSchedule EveningNudgeKind = "behind-schedule"
)

// EveningNudge proposes how to spend remaining free time.
type EveningNudge struct {
	Kind                EveningNudgeKind    `json:"kind"`
	RemainingMinutes    int                 `json:"remainingMinutes"`
	BehindGoals         []GoalProgress      `json:"behindGoals"`
	SuggestedActivities []SuggestedActivity `json:"suggestedActivities"`
	Message             string              `json:"message"`
}

// TriageState is the crisis signal raised when little time remains before
// planned sleep while activities are still incomplete.
type TriageState struct {
	CurrentTime            time.Time  `json:"currentTime"`
	PlannedSleepTime       time.Time  `json:"plannedSleepTime"`
	RemainingMinutes       int        `json:"remainingMinutes"`
	IncompleteActivities   []Activity `json:"incompleteActivities"`
	TotalIncompleteMinutes int        `json:"totalIncompleteMinutes"`
}

// TimeBudget summarizes the day's minute arithmetic. FreeMinutes preserves
// its sign for trend data; presentation layers clamp and badge it separately.
type TimeBudget struct {
	TotalAvailableMinutes int `json:"totalAvailableMinutes"`
	AllocatedMinutes      int `json:"allocatedMinutes"`
	RemainingMinutes      int `json:"remainingMinutes"`
	FreeMinutes           int `json:"freeMinutes"`
}
