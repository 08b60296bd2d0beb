package models

// AppState is the aggregate root: the only unit that is ever persisted
// locally or pushed to the remote blob store.
type AppState struct {
	DaySessions      map[string]*DaySession `json:"daySessions"`
	CurrentSessionID string                 `json:"currentSessionId,omitempty"`
	Goals            []Goal                 `json:"goals"`
	Backlog          []BacklogItem          `json:"backlog"`
	Settings         Settings               `json:"settings"`
}

// NewAppState returns an empty state with default settings.
func NewAppState() *AppState {
	return &AppState{
		DaySessions: make(map[string]*DaySession),
		Goals:       []Goal{},
		Backlog:     []BacklogItem{},
		Settings:    DefaultSettings(),
	}
}

// CurrentSession returns the active day session, or nil when there is none.
func (s *AppState) CurrentSession() *DaySession {
	if s == nil || s.CurrentSessionID == "" {
		return nil
	}
	return s.DaySessions[s.CurrentSessionID]
}

// Clone returns a deep copy of the state. The reducer never mutates its
// input; transitions operate on a clone.
func (s *AppState) Clone() *AppState {
	if s == nil {
		return nil
	}
	c := &AppState{
		DaySessions:      make(map[string]*DaySession, len(s.DaySessions)),
		CurrentSessionID: s.CurrentSessionID,
		Goals:            make([]Goal, len(s.Goals)),
		Backlog:          make([]BacklogItem, len(s.Backlog)),
		Settings:         s.Settings,
	}
	for id, sess := range s.DaySessions {
		c.DaySessions[id] = sess.Clone()
	}
	copy(c.Goals, s.Goals)
	copy(c.Backlog, s.Backlog)
	if s.Settings.LastExportedAt != nil {
		t := *s.Settings.LastExportedAt
		c.Settings.LastExportedAt = &t
	}
	return c
}
