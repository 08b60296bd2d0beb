package models

import "time"

// DaySession is one wake-to-sleep period. It replaces the calendar day as
// the unit of planning: plannedSleepTime may land on the next calendar day.
type DaySession struct {
	ID               string     `json:"id"`
	WakeTime         time.Time  `json:"wakeTime"`
	PlannedSleepTime time.Time  `json:"plannedSleepTime"`
	ActualSleepTime  *time.Time `json:"actualSleepTime,omitempty"`
	IsActive         bool       `json:"isActive"`
	IsSetupComplete  bool       `json:"isSetupComplete"`
	IsReconciled     bool       `json:"isReconciled"`
	Activities       []Activity `json:"activities"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of the session and its activities.
func (s *DaySession) Clone() *DaySession {
	if s == nil {
		return nil
	}
	c := *s
	if s.ActualSleepTime != nil {
		actual := *s.ActualSleepTime
		c.ActualSleepTime = &actual
	}
	c.Activities = make([]Activity, len(s.Activities))
	for i, a := range s.Activities {
		c.Activities[i] = a.Clone()
	}
	return &c
}

// IncompleteActivities returns the activities not yet marked completed,
// preserving order.
func (s *DaySession) IncompleteActivities() []Activity {
	if s == nil {
		return nil
	}
	var out []Activity
	for _, a := range s.Activities {
		if !a.Completed {
			out = append(out, a)
		}
	}
	return out
}
