package metrics

import (
	"testing"
	"time"

	"github.com/ynaht/ynaht/internal/models"
)

// Thursday March 5, 2026: day 4 of 7 with a Monday week start, so the
// expected weekly pace is (3+1)/7 = 57.1%.
var thursday = time.Date(2026, time.March, 5, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

// weekState builds a state with one session this week containing the given
// completed activities and one weekly goal.
func weekState(goal models.Goal, activities ...models.Activity) *models.AppState {
	state := models.NewAppState()
	sess := &models.DaySession{
		ID:         "s1",
		WakeTime:   time.Date(2026, time.March, 5, 7, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2026, time.March, 5, 7, 0, 0, 0, time.UTC),
		Activities: activities,
	}
	state.DaySessions["s1"] = sess
	state.Goals = []models.Goal{goal}
	return state
}

func completedActivity(name string, minutes int) models.Activity {
	return models.Activity{
		ID:             name,
		Name:           name,
		PlannedMinutes: minutes,
		ActualMinutes:  intPtr(minutes),
		Completed:      true,
		CategoryID:     "health",
	}
}

func TestGoalProgressCountStatus(t *testing.T) {
	t.Parallel()

	goal := models.Goal{
		ID:              "g1",
		Name:            "Exercise",
		TargetType:      models.TargetCount,
		TargetValue:     3,
		Frequency:       models.FrequencyWeekly,
		ActivityPattern: "exercise",
		IsActive:        true,
	}

	tests := []struct {
		name       string
		completed  int
		wantStatus models.GoalStatus
		wantPct    float64
	}{
		// Expected pace on Thursday is 57.1%; behind needs pct < 47.1.
		{"one of three is behind", 1, models.StatusBehind, 100.0 / 3},
		{"two of three is on track", 2, models.StatusOnTrack, 200.0 / 3},
		{"three of three is complete", 3, models.StatusComplete, 100},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var acts []models.Activity
			for i := 0; i < tt.completed; i++ {
				a := completedActivity("Exercise", 30)
				a.ID = a.ID + string(rune('a'+i))
				acts = append(acts, a)
			}
			state := weekState(goal, acts...)

			progress := GoalProgressAll(state, thursday)
			if len(progress) != 1 {
				t.Fatalf("Expected 1 progress entry, got %d", len(progress))
			}
			gp := progress[0]
			if gp.Status != tt.wantStatus {
				t.Errorf("Expected status %s, got %s", tt.wantStatus, gp.Status)
			}
			if diff := gp.Percentage - tt.wantPct; diff > 0.01 || diff < -0.01 {
				t.Errorf("Expected percentage %.1f, got %.1f", tt.wantPct, gp.Percentage)
			}
			if gp.CurrentValue != tt.completed {
				t.Errorf("Expected current value %d, got %d", tt.completed, gp.CurrentValue)
			}
		})
	}
}

func TestGoalProgressDurationSumsEffectiveMinutes(t *testing.T) {
	t.Parallel()

	goal := models.Goal{
		ID:              "g1",
		Name:            "Deep work",
		TargetType:      models.TargetDuration,
		TargetValue:     300,
		Frequency:       models.FrequencyWeekly,
		ActivityPattern: "deep work",
		IsActive:        true,
	}
	a := completedActivity("Deep Work", 90)
	a.ActualMinutes = intPtr(120) // actual overrides planned
	state := weekState(goal, a, completedActivity("Deep work sprint", 60))

	progress := GoalProgressAll(state, thursday)
	if progress[0].CurrentValue != 180 {
		t.Errorf("Expected 180 minutes counted, got %d", progress[0].CurrentValue)
	}
	if progress[0].Remaining != 120 {
		t.Errorf("Expected 120 minutes remaining, got %d", progress[0].Remaining)
	}
}

func TestGoalProgressIgnoresPlannedOnlyActivities(t *testing.T) {
	t.Parallel()

	goal := models.Goal{
		ID:              "g1",
		TargetType:      models.TargetCount,
		TargetValue:     3,
		Frequency:       models.FrequencyWeekly,
		ActivityPattern: "exercise",
		IsActive:        true,
	}
	planned := models.Activity{ID: "a1", Name: "Exercise", PlannedMinutes: 30}
	state := weekState(goal, planned)

	progress := GoalProgressAll(state, thursday)
	if progress[0].CurrentValue != 0 {
		t.Errorf("Expected planned-only activity to not count, got %d", progress[0].CurrentValue)
	}
}

func TestGoalProgressSkipsInactiveGoalsAndOtherWeeks(t *testing.T) {
	t.Parallel()

	goal := models.Goal{
		ID:              "g1",
		TargetType:      models.TargetCount,
		TargetValue:     3,
		Frequency:       models.FrequencyWeekly,
		ActivityPattern: "exercise",
		IsActive:        true,
	}
	state := weekState(goal, completedActivity("Exercise", 30))

	// A completed match from last week does not count this week.
	state.DaySessions["old"] = &models.DaySession{
		ID:         "old",
		WakeTime:   time.Date(2026, time.February, 24, 7, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2026, time.February, 24, 7, 0, 0, 0, time.UTC),
		Activities: []models.Activity{completedActivity("Exercise", 30)},
	}
	progress := GoalProgressAll(state, thursday)
	if progress[0].CurrentValue != 1 {
		t.Errorf("Expected only this week's activity, got %d", progress[0].CurrentValue)
	}

	state.Goals[0].IsActive = false
	if got := GoalProgressAll(state, thursday); len(got) != 0 {
		t.Errorf("Expected inactive goals excluded, got %d entries", len(got))
	}
}

func TestGoalProgressPatternIsCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	goal := models.Goal{
		ID:              "g1",
		TargetType:      models.TargetCount,
		TargetValue:     2,
		Frequency:       models.FrequencyWeekly,
		ActivityPattern: "run",
		IsActive:        true,
	}
	state := weekState(goal,
		completedActivity("Morning RUN", 30),
		completedActivity("Brunch", 45), // "run" inside "Brunch" also matches
		completedActivity("Yoga", 30),
	)

	progress := GoalProgressAll(state, thursday)
	if progress[0].CurrentValue != 2 {
		t.Errorf("Expected 2 matches, got %d", progress[0].CurrentValue)
	}
}

func TestGoalProgressDailyAndMonthlyWindows(t *testing.T) {
	t.Parallel()

	daily := models.Goal{
		ID:              "g1",
		TargetType:      models.TargetCount,
		TargetValue:     1,
		Frequency:       models.FrequencyDaily,
		ActivityPattern: "exercise",
		IsActive:        true,
	}
	state := weekState(daily, completedActivity("Exercise", 30))

	progress := GoalProgressAll(state, thursday)
	if progress[0].Status != models.StatusComplete {
		t.Errorf("Expected daily goal complete, got %s", progress[0].Status)
	}

	// The previous day's session is outside a daily window.
	progress = GoalProgressAll(state, thursday.AddDate(0, 0, 1))
	if progress[0].CurrentValue != 0 {
		t.Errorf("Expected 0 for the next day, got %d", progress[0].CurrentValue)
	}

	state.Goals[0].Frequency = models.FrequencyMonthly
	progress = GoalProgressAll(state, thursday.AddDate(0, 0, 1))
	if progress[0].CurrentValue != 1 {
		t.Errorf("Expected monthly window to include the session, got %d", progress[0].CurrentValue)
	}
}
