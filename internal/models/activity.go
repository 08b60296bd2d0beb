package models

// Activity is a planned or completed unit of time within a day session.
type Activity struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	PlannedMinutes int         `json:"plannedMinutes"`
	ActualMinutes  *int        `json:"actualMinutes,omitempty"`
	CategoryID     string      `json:"categoryId"`
	DaySessionID   string      `json:"daySessionId"`
	Order          int         `json:"order"`
	Notes          string      `json:"notes,omitempty"`
	Completed      bool        `json:"completed,omitempty"`
	Timer          *TimerState `json:"timer,omitempty"`

	// Backlog provenance, set when the activity was restored from the backlog.
	PostponedCount        int    `json:"postponedCount,omitempty"`
	OriginalDaySessionID  string `json:"originalDaySessionId,omitempty"`
}

// EffectiveMinutes returns actual minutes when recorded, planned otherwise.
func (a *Activity) EffectiveMinutes() int {
	if a.ActualMinutes != nil {
		return *a.ActualMinutes
	}
	return a.PlannedMinutes
}

// Clone returns a deep copy of the activity.
func (a Activity) Clone() Activity {
	c := a
	if a.ActualMinutes != nil {
		actual := *a.ActualMinutes
		c.ActualMinutes = &actual
	}
	c.Timer = a.Timer.Clone()
	return c
}
