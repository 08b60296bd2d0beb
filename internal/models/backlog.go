package models

import "time"

// BacklogItem is a postponed activity awaiting reinsertion. Repeat
// postponements of the same-named activity within one week bucket increment
// PostponedCount on the existing item instead of creating a duplicate.
type BacklogItem struct {
	ID                   string    `json:"id"`
	ActivityName         string    `json:"activityName"`
	CategoryID           string    `json:"categoryId"`
	PlannedMinutes       int       `json:"plannedMinutes"`
	PostponedCount       int       `json:"postponedCount"`
	OriginalDaySessionID string    `json:"originalDaySessionId"`
	AddedToBacklogAt     time.Time `json:"addedToBacklogAt"`
	// WeekOf is the ISO date (yyyy-mm-dd) of the week-start day the item
	// belongs to, per the configured week start. Distinct weeks never merge.
	WeekOf string `json:"weekOf"`
}
