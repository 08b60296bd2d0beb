package timeutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestNormalizeSleepTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		wake  time.Time
		sleep time.Time
		want  time.Time
	}{
		{
			name:  "same day evening",
			wake:  date(2026, time.March, 2, 7, 0),
			sleep: date(2026, time.March, 2, 23, 0),
			want:  date(2026, time.March, 2, 23, 0),
		},
		{
			name:  "sleep before wake rolls to next day",
			wake:  date(2026, time.March, 2, 7, 0),
			sleep: date(2026, time.March, 2, 1, 0),
			want:  date(2026, time.March, 3, 1, 0),
		},
		{
			name:  "sleep equal to wake rolls to next day",
			wake:  date(2026, time.March, 2, 7, 0),
			sleep: date(2026, time.March, 2, 7, 0),
			want:  date(2026, time.March, 3, 7, 0),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := NormalizeSleepTime(tt.wake, tt.sleep)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMinutesBetweenMidnightCrossing(t *testing.T) {
	t.Parallel()

	wake := date(2026, time.March, 2, 7, 0)
	sleep := NormalizeSleepTime(wake, date(2026, time.March, 2, 1, 0))
	if got := MinutesBetween(wake, sleep); got != 1080 {
		t.Errorf("Expected 1080 minutes for a 7am-1am day, got %d", got)
	}
}

func TestStartOfWeek(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		t            time.Time
		weekStartsOn int
		want         time.Time
	}{
		{
			name:         "monday start from wednesday",
			t:            date(2026, time.March, 4, 15, 30), // Wednesday
			weekStartsOn: 1,
			want:         date(2026, time.March, 2, 0, 0), // Monday
		},
		{
			name:         "sunday start from wednesday",
			t:            date(2026, time.March, 4, 15, 30),
			weekStartsOn: 0,
			want:         date(2026, time.March, 1, 0, 0), // Sunday
		},
		{
			name:         "monday start on sunday goes back six days",
			t:            date(2026, time.March, 8, 9, 0), // Sunday
			weekStartsOn: 1,
			want:         date(2026, time.March, 2, 0, 0),
		},
		{
			name:         "week start day is its own start",
			t:            date(2026, time.March, 2, 0, 0),
			weekStartsOn: 1,
			want:         date(2026, time.March, 2, 0, 0),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := StartOfWeek(tt.t, tt.weekStartsOn)
			if !got.Equal(tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDaysIntoWeek(t *testing.T) {
	t.Parallel()

	// Wednesday with a Monday week start is two full days in.
	if got := DaysIntoWeek(date(2026, time.March, 4, 12, 0), 1); got != 2 {
		t.Errorf("Expected 2, got %d", got)
	}
	// Sunday with a Monday week start is the last day.
	if got := DaysIntoWeek(date(2026, time.March, 8, 12, 0), 1); got != 6 {
		t.Errorf("Expected 6, got %d", got)
	}
}

func TestWeekOf(t *testing.T) {
	t.Parallel()

	if got := WeekOf(date(2026, time.March, 4, 12, 0), 1); got != "2026-03-02" {
		t.Errorf("Expected 2026-03-02, got %s", got)
	}
	if got := WeekOf(date(2026, time.March, 4, 12, 0), 0); got != "2026-03-01" {
		t.Errorf("Expected 2026-03-01, got %s", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		t    time.Time
		want int
	}{
		{"march", date(2026, time.March, 15, 0, 0), 31},
		{"april", date(2026, time.April, 1, 0, 0), 30},
		{"february non leap", date(2026, time.February, 10, 0, 0), 28},
		{"february leap", date(2028, time.February, 10, 0, 0), 29},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysInMonth(tt.t); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestRoundSecondsToMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int64
		want    int
	}{
		{"zero still records one minute", 0, 1},
		{"under half a minute rounds down to floor of one", 29, 1},
		{"rounds to nearest", 125, 2},
		{"rounds up at half", 150, 3},
		{"exact minutes", 600, 10},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := RoundSecondsToMinutes(tt.seconds); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		minutes int
		want    string
	}{
		{45, "45m"},
		{60, "1h"},
		{125, "2h 5m"},
		{0, "0m"},
		{-90, "-1h 30m"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			if got := FormatMinutes(tt.minutes); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestVariance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		planned int
		actual  int
		want    VarianceLevel
	}{
		{"under budget", 60, 50, VarianceUnder},
		{"exactly on budget", 60, 60, VarianceUnder},
		{"twenty percent over", 100, 120, VarianceSlight},
		{"beyond twenty percent", 100, 121, VarianceSignificant},
		{"zero planned with overrun", 0, 10, VarianceUnder},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Variance(tt.planned, tt.actual); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestVarianceText(t *testing.T) {
	t.Parallel()

	if got := VarianceText(60, 60); got != "On track" {
		t.Errorf("Expected 'On track', got %q", got)
	}
	if got := VarianceText(60, 125); got != "+1h 5m over" {
		t.Errorf("Expected '+1h 5m over', got %q", got)
	}
	if got := VarianceText(60, 30); got != "30m under" {
		t.Errorf("Expected '30m under', got %q", got)
	}
}
