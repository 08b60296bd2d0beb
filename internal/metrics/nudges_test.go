package metrics

import (
	"strings"
	"testing"
	"time"

	"github.com/ynaht/ynaht/internal/models"
)

func behindWeeklyGoal() models.Goal {
	return models.Goal{
		ID:              "g1",
		Name:            "Exercise",
		CategoryID:      "health",
		TargetType:      models.TargetCount,
		TargetValue:     5,
		Frequency:       models.FrequencyWeekly,
		ActivityPattern: "exercise",
		IsActive:        true,
	}
}

func TestMorningNudgeNilOnceSetupComplete(t *testing.T) {
	t.Parallel()

	state := sessionState()
	if got := MorningNudgeFor(state, thursday); got != nil {
		t.Errorf("Expected nil nudge after setup, got %+v", got)
	}
}

func TestMorningNudgeSuggestsForBehindGoals(t *testing.T) {
	t.Parallel()

	state := sessionState()
	state.DaySessions["s1"].IsSetupComplete = false
	state.Goals = []models.Goal{behindWeeklyGoal()}

	nudge := MorningNudgeFor(state, thursday)
	if nudge == nil {
		t.Fatal("Expected a morning nudge")
	}
	if nudge.DayOfWeek != "Thursday" {
		t.Errorf("Expected Thursday, got %s", nudge.DayOfWeek)
	}
	if len(nudge.Suggestions) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(nudge.Suggestions))
	}
	s := nudge.Suggestions[0]
	if s.Name != "exercise" {
		t.Errorf("Expected suggestion named after the pattern, got %q", s.Name)
	}
	if s.CategoryID != "health" {
		t.Errorf("Expected goal category, got %q", s.CategoryID)
	}
	if s.SuggestedMinutes != 30 {
		t.Errorf("Expected default 30 minutes without history, got %d", s.SuggestedMinutes)
	}
	if s.Reason != "Weekly goal: 0/5 times" {
		t.Errorf("Unexpected reason %q", s.Reason)
	}
}

func TestMorningNudgeFallsBackToPersonalCategory(t *testing.T) {
	t.Parallel()

	goal := behindWeeklyGoal()
	goal.CategoryID = ""
	state := models.NewAppState()
	state.Goals = []models.Goal{goal}

	nudge := MorningNudgeFor(state, thursday)
	if nudge == nil || len(nudge.Suggestions) != 1 {
		t.Fatal("Expected a nudge with one suggestion")
	}
	if nudge.Suggestions[0].CategoryID != "personal" {
		t.Errorf("Expected fallback category personal, got %q", nudge.Suggestions[0].CategoryID)
	}
}

func TestEveningNudgeSuppressedUnderAnHour(t *testing.T) {
	t.Parallel()

	state := sessionState(models.Activity{ID: "a1", Name: "Work", PlannedMinutes: 480})
	// 8:30pm: 150 remaining minus 480 incomplete leaves negative free time.
	if got := EveningNudgeFor(state, at(20, 30)); got != nil {
		t.Errorf("Expected nil nudge with no free time, got %+v", got)
	}
}

func TestEveningNudgeOnTrackMessage(t *testing.T) {
	t.Parallel()

	state := sessionState()
	nudge := EveningNudgeFor(state, at(19, 0))
	if nudge == nil {
		t.Fatal("Expected an evening nudge")
	}
	if nudge.Kind != models.EveningOnTrack {
		t.Errorf("Expected on-track kind, got %s", nudge.Kind)
	}
	if nudge.Message != "You're crushing it this week! All weekly goals on track." {
		t.Errorf("Unexpected message %q", nudge.Message)
	}
}

func TestEveningNudgeBehindScheduleMessage(t *testing.T) {
	t.Parallel()

	state := sessionState()
	state.Goals = []models.Goal{behindWeeklyGoal()}

	// 7pm on Thursday: 240 free minutes, one behind goal.
	nudge := EveningNudgeFor(state, at(19, 0))
	if nudge == nil {
		t.Fatal("Expected an evening nudge")
	}
	if nudge.Kind != models.EveningBehindSchedule {
		t.Errorf("Expected behind-schedule kind, got %s", nudge.Kind)
	}
	if nudge.Message != "You have 4.0 hours of free time and 1 goal(s) behind schedule." {
		t.Errorf("Unexpected message %q", nudge.Message)
	}
	if len(nudge.SuggestedActivities) != 1 {
		t.Fatalf("Expected 1 suggestion, got %d", len(nudge.SuggestedActivities))
	}
	if !strings.HasPrefix(nudge.SuggestedActivities[0].Reason, "Need 5 more times") {
		t.Errorf("Unexpected reason %q", nudge.SuggestedActivities[0].Reason)
	}
}

func TestEveningNudgeSkipsSuggestionsThatDoNotFit(t *testing.T) {
	t.Parallel()

	goal := behindWeeklyGoal()
	goal.TargetType = models.TargetDuration
	goal.TargetValue = 600

	state := sessionState()
	state.Goals = []models.Goal{goal}
	// Give the pattern a history with a large average so the suggestion
	// exceeds the free window.
	state.DaySessions["old"] = &models.DaySession{
		ID:        "old",
		WakeTime:  time.Date(2026, time.February, 10, 7, 0, 0, 0, time.UTC),
		CreatedAt: time.Date(2026, time.February, 10, 7, 0, 0, 0, time.UTC),
		Activities: []models.Activity{{
			ID: "a1", Name: "Exercise", PlannedMinutes: 300,
			ActualMinutes: intPtr(300), Completed: true,
		}},
	}

	// 9pm: 120 free minutes, suggestion of 300 does not fit.
	nudge := EveningNudgeFor(state, at(21, 0))
	if nudge == nil {
		t.Fatal("Expected an evening nudge")
	}
	if len(nudge.SuggestedActivities) != 0 {
		t.Errorf("Expected oversized suggestion skipped, got %d", len(nudge.SuggestedActivities))
	}
	if len(nudge.BehindGoals) != 1 {
		t.Errorf("Expected the behind goal reported, got %d", len(nudge.BehindGoals))
	}
}

func TestTriage(t *testing.T) {
	t.Parallel()

	state := sessionState(
		models.Activity{ID: "a1", Name: "Dishes", PlannedMinutes: 20},
		models.Activity{ID: "a2", Name: "Read", PlannedMinutes: 30, Completed: true},
	)

	// 10:40pm: 20 minutes left, one incomplete activity.
	triage := Triage(state, at(22, 40))
	if triage == nil {
		t.Fatal("Expected triage state")
	}
	if triage.RemainingMinutes != 20 {
		t.Errorf("Expected 20 remaining, got %d", triage.RemainingMinutes)
	}
	if len(triage.IncompleteActivities) != 1 || triage.IncompleteActivities[0].Name != "Dishes" {
		t.Errorf("Expected only the incomplete activity, got %+v", triage.IncompleteActivities)
	}
	if triage.TotalIncompleteMinutes != 20 {
		t.Errorf("Expected 20 incomplete minutes, got %d", triage.TotalIncompleteMinutes)
	}
}

func TestTriageNotRaisedEarlyOrWhenDone(t *testing.T) {
	t.Parallel()

	state := sessionState(models.Activity{ID: "a1", Name: "Dishes", PlannedMinutes: 20})
	// 31+ minutes out: no triage.
	if got := Triage(state, at(22, 29)); got != nil {
		t.Errorf("Expected no triage with over 30 minutes left, got %+v", got)
	}

	// Everything complete: no triage even at the threshold.
	state.DaySessions["s1"].Activities[0].Completed = true
	if got := Triage(state, at(22, 45)); got != nil {
		t.Errorf("Expected no triage with nothing incomplete, got %+v", got)
	}
}

func TestThisWeeksBacklog(t *testing.T) {
	t.Parallel()

	state := models.NewAppState()
	state.Backlog = []models.BacklogItem{
		{ID: "b1", ActivityName: "Old", WeekOf: "2026-02-23"},
		{ID: "b2", ActivityName: "Current", WeekOf: "2026-03-02"},
	}

	items := ThisWeeksBacklog(state, thursday)
	if len(items) != 1 || items[0].ID != "b2" {
		t.Errorf("Expected only the current week's item, got %+v", items)
	}
}
