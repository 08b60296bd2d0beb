package engine

import (
	"sync"
	"time"

	"github.com/ynaht/ynaht/internal/models"
)

// Listener observes state transitions. Listeners run synchronously on the
// dispatching goroutine, after the transition has been applied.
type Listener func(state *models.AppState)

// Store owns the canonical AppState and serializes transitions. It is the
// explicit, injectable replacement for an ambient global state container:
// components that need state receive a *Store and use Dispatch/Subscribe.
type Store struct {
	mu        sync.Mutex
	state     *models.AppState
	clock     func() time.Time
	listeners map[int]Listener
	nextSub   int
}

// Option configures a Store.
type Option func(*Store)

// WithClock injects the wall clock, used by tests for deterministic time.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) { s.clock = clock }
}

// WithInitialState seeds the store with a previously persisted state.
func WithInitialState(state *models.AppState) Option {
	return func(s *Store) {
		if state != nil {
			s.state = state.Clone()
		}
	}
}

// NewStore creates a store over an empty default state.
func NewStore(opts ...Option) *Store {
	s := &Store{
		state:     models.NewAppState(),
		clock:     time.Now,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a deep copy of the current state.
func (s *Store) State() *models.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Now returns the store's current wall-clock time.
func (s *Store) Now() time.Time {
	return s.clock()
}

// Dispatch applies an action through the reducer and notifies subscribers.
// Actions are applied atomically in dispatch order; no listener observes a
// partially-applied transition.
func (s *Store) Dispatch(action Action) *models.AppState {
	s.mu.Lock()
	s.state = Apply(s.state, action, s.clock())
	next := s.state.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers a listener for future transitions and returns an
// unsubscribe function.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = l
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
