package engine

import (
	"testing"
	"time"

	"github.com/ynaht/ynaht/internal/models"
)

func TestStoreDispatchUsesInjectedClock(t *testing.T) {
	t.Parallel()

	now := baseTime
	store := NewStore(WithClock(func() time.Time { return now }))

	state := store.Dispatch(StartNewDay{
		WakeTime:         baseTime,
		PlannedSleepTime: baseTime.Add(16 * time.Hour),
	})

	if !state.CurrentSession().CreatedAt.Equal(baseTime) {
		t.Errorf("Expected session created at %v, got %v", baseTime, state.CurrentSession().CreatedAt)
	}
}

func TestStoreStateReturnsCopy(t *testing.T) {
	t.Parallel()

	store := NewStore()
	store.Dispatch(StartNewDay{
		WakeTime:         baseTime,
		PlannedSleepTime: baseTime.Add(16 * time.Hour),
	})

	snapshot := store.State()
	snapshot.CurrentSessionID = "tampered"

	if store.State().CurrentSessionID == "tampered" {
		t.Error("Expected store state to be isolated from returned copies")
	}
}

func TestStoreSubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()

	store := NewStore()
	var seen []*models.AppState
	unsubscribe := store.Subscribe(func(state *models.AppState) {
		seen = append(seen, state)
	})

	store.Dispatch(StartNewDay{
		WakeTime:         baseTime,
		PlannedSleepTime: baseTime.Add(16 * time.Hour),
	})
	if len(seen) != 1 {
		t.Fatalf("Expected 1 notification, got %d", len(seen))
	}
	if seen[0].CurrentSession() == nil {
		t.Error("Expected listener to observe the applied transition")
	}

	unsubscribe()
	store.Dispatch(EndDay{})
	if len(seen) != 1 {
		t.Errorf("Expected no notification after unsubscribe, got %d", len(seen))
	}
}

func TestStoreWithInitialState(t *testing.T) {
	t.Parallel()

	seed := models.NewAppState()
	seed.Goals = append(seed.Goals, models.Goal{ID: "g1", Name: "Read", IsActive: true})

	store := NewStore(WithInitialState(seed))

	// The store took a copy of the seed.
	seed.Goals[0].Name = "tampered"
	if got := store.State().Goals[0].Name; got != "Read" {
		t.Errorf("Expected goal name 'Read', got %q", got)
	}
}
