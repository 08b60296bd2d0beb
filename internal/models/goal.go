package models

import "time"

// GoalTargetType represents what a goal counts
type GoalTargetType string

const (
	TargetCount    GoalTargetType = "count"
	TargetDuration GoalTargetType = "duration"
)

// GoalFrequency represents the recurrence period of a goal
type GoalFrequency string

const (
	FrequencyDaily   GoalFrequency = "daily"
	FrequencyWeekly  GoalFrequency = "weekly"
	FrequencyMonthly GoalFrequency = "monthly"
)

// Goal is a recurring target matched against activity names. Duration
// targets are always stored in minutes; hour-level inputs are converted
// before they reach the engine.
type Goal struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	CategoryID      string         `json:"categoryId,omitempty"`
	TargetType      GoalTargetType `json:"targetType"`
	TargetValue     int            `json:"targetValue"`
	Frequency       GoalFrequency  `json:"frequency"`
	ActivityPattern string         `json:"activityPattern"`
	CreatedAt       time.Time      `json:"createdAt"`
	IsActive        bool           `json:"isActive"`
}
