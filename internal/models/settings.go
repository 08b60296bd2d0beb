package models

import "time"

// Settings holds user preferences carried inside the synced state blob.
type Settings struct {
	DefaultWakeTime  string `json:"defaultWakeTime"`  // HH:mm
	DefaultSleepTime string `json:"defaultSleepTime"` // HH:mm
	// WeekStartsOn selects the first day of the week: 0 = Sunday, 1 = Monday.
	WeekStartsOn           int        `json:"weekStartsOn"`
	ProductivityBuffer     int        `json:"productivityBuffer"` // percent
	LastExportedAt         *time.Time `json:"lastExportedAt,omitempty"`
	HasCompletedOnboarding bool       `json:"hasCompletedOnboarding"`
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	DefaultWakeTime        *string
	DefaultSleepTime       *string
	WeekStartsOn           *int
	ProductivityBuffer     *int
	LastExportedAt         *time.Time
	HasCompletedOnboarding *bool
}

// DefaultSettings returns the settings applied to a fresh state.
func DefaultSettings() Settings {
	return Settings{
		DefaultWakeTime:    "07:00",
		DefaultSleepTime:   "23:00",
		WeekStartsOn:       1,
		ProductivityBuffer: 15,
	}
}

// Apply merges the non-nil fields of the patch into a copy of the settings.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.DefaultWakeTime != nil {
		s.DefaultWakeTime = *p.DefaultWakeTime
	}
	if p.DefaultSleepTime != nil {
		s.DefaultSleepTime = *p.DefaultSleepTime
	}
	if p.WeekStartsOn != nil {
		s.WeekStartsOn = *p.WeekStartsOn
	}
	if p.ProductivityBuffer != nil {
		s.ProductivityBuffer = *p.ProductivityBuffer
	}
	if p.LastExportedAt != nil {
		t := *p.LastExportedAt
		s.LastExportedAt = &t
	}
	if p.HasCompletedOnboarding != nil {
		s.HasCompletedOnboarding = *p.HasCompletedOnboarding
	}
	return s
}
