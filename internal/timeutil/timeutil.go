// Package timeutil provides the minute arithmetic and calendar windowing
// used by the reducer and the derived metrics.
package timeutil

import (
	"fmt"
	"math"
	"time"
)

const layoutISO = "2006-01-02"

// NormalizeSleepTime resolves midnight crossing: when the planned sleep
// instant is not strictly after the wake instant, the session is understood
// to span into the next calendar day.
func NormalizeSleepTime(wake, sleep time.Time) time.Time {
	if sleep.After(wake) {
		return sleep
	}
	return sleep.Add(24 * time.Hour)
}

// MinutesBetween returns whole minutes from a to b, truncated toward zero.
func MinutesBetween(a, b time.Time) int {
	return int(b.Sub(a) / time.Minute)
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the first day of t's week.
// weekStartsOn is 0 for Sunday, 1 for Monday.
func StartOfWeek(t time.Time, weekStartsOn int) time.Time {
	days := (int(t.Weekday()) - weekStartsOn + 7) % 7
	return StartOfDay(t).AddDate(0, 0, -days)
}

// EndOfWeek returns the last instant of t's week.
func EndOfWeek(t time.Time, weekStartsOn int) time.Time {
	return StartOfWeek(t, weekStartsOn).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// DaysInMonth returns the number of calendar days in t's month.
func DaysInMonth(t time.Time) int {
	return StartOfMonth(t).AddDate(0, 1, -1).Day()
}

// DaysIntoWeek returns how many full days of t's week have elapsed (0-6).
func DaysIntoWeek(t time.Time, weekStartsOn int) int {
	return (int(t.Weekday()) - weekStartsOn + 7) % 7
}

// WeekOf formats the week bucket key for t: the ISO date of the week start.
func WeekOf(t time.Time, weekStartsOn int) string {
	return StartOfWeek(t, weekStartsOn).Format(layoutISO)
}

// WithinInterval reports whether t falls inside [start, end] inclusive.
func WithinInterval(t, start, end time.Time) bool {
	return !t.Before(start) && !t.After(end)
}

// RoundSecondsToMinutes converts timer seconds to the recorded actual
// minutes: nearest minute, floored at one so a stopped timer never records
// zero work.
func RoundSecondsToMinutes(seconds int64) int {
	m := int(math.Round(float64(seconds) / 60))
	if m < 1 {
		return 1
	}
	return m
}

// FormatMinutes renders a minute count as "2h 5m" / "45m" / "3h",
// preserving the sign for negative (over-budget) values.
func FormatMinutes(minutes int) string {
	sign := ""
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	hrs := minutes / 60
	mins := minutes % 60
	switch {
	case hrs == 0:
		return fmt.Sprintf("%s%dm", sign, mins)
	case mins == 0:
		return fmt.Sprintf("%s%dh", sign, hrs)
	default:
		return fmt.Sprintf("%s%dh %dm", sign, hrs, mins)
	}
}

// VarianceLevel bands the actual-vs-planned overrun for display.
type VarianceLevel string

const (
	VarianceUnder       VarianceLevel = "under"
	VarianceSlight      VarianceLevel = "slight"
	VarianceSignificant VarianceLevel = "significant"
)

// Variance returns the banding of actual against planned minutes:
// at-or-under budget, up to 20% over, or beyond.
func Variance(planned, actual int) VarianceLevel {
	variance := actual - planned
	percent := 0.0
	if planned > 0 {
		percent = float64(variance) / float64(planned) * 100
	}
	switch {
	case percent <= 0:
		return VarianceUnder
	case percent <= 20:
		return VarianceSlight
	default:
		return VarianceSignificant
	}
}

// VarianceText renders the variance for summaries: "On track",
// "+1h 5m over" or "30m under".
func VarianceText(planned, actual int) string {
	variance := actual - planned
	switch {
	case variance == 0:
		return "On track"
	case variance > 0:
		return fmt.Sprintf("+%s over", FormatMinutes(variance))
	default:
		return fmt.Sprintf("%s under", FormatMinutes(-variance))
	}
}
