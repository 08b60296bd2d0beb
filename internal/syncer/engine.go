package syncer

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ynaht/ynaht/internal/models"
	"github.com/ynaht/ynaht/internal/storage"
)

// DefaultDebounce is the coalescing window for outbound writes.
const DefaultDebounce = time.Second

// Remote is the transport the engine pushes to and pulls from.
type Remote interface {
	Fetch(ctx context.Context) (*RemoteState, error)
	Push(ctx context.Context, data json.RawMessage) (time.Time, error)
}

// Status reflects the user-visible sync indicator.
type Status struct {
	Online       bool
	Syncing      bool
	HasUnsynced  bool
	LastSyncedAt *time.Time
	LastError    string
}

// Engine reconciles local state with the remote store. Rapid state changes
// coalesce into one outbound write per debounce window; when offline (or on
// push failure) the latest snapshot lands in the single-slot offline queue
// and is flushed once connectivity returns.
type Engine struct {
	remote   Remote
	local    *storage.Local
	logger   *zap.Logger
	debounce time.Duration
	clock    func() time.Time

	mu           sync.Mutex
	timer        *time.Timer
	pending      *models.AppState // single-slot pending-write register
	online       bool
	syncing      bool
	hasUnsynced  bool
	lastSyncedAt *time.Time
	lastErr      error
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithDebounce overrides the push coalescing window.
func WithDebounce(d time.Duration) EngineOption {
	return func(e *Engine) { e.debounce = d }
}

// WithClock injects the wall clock for deterministic tests.
func WithClock(clock func() time.Time) EngineOption {
	return func(e *Engine) { e.clock = clock }
}

// NewEngine creates a sync engine. The unsynced flag is seeded from any
// offline queue entry that survived a previous run.
func NewEngine(remote Remote, local *storage.Local, logger *zap.Logger, opts ...EngineOption) *Engine {
	e := &Engine{
		remote:   remote,
		local:    local,
		logger:   logger,
		debounce: DefaultDebounce,
		clock:    time.Now,
		online:   true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if _, ok := local.OfflineQueue(); ok {
		e.hasUnsynced = true
	}
	return e
}

// Pull fetches the remote state and reconciles it against the offline
// queue, last write wins: a queued local write newer than the remote's
// lastUpdatedAt (or a remote without metadata) is returned instead of the
// fetched state. On fetch failure the queued state is returned if present,
// else nil, with the fetch error alongside for the status indicator.
func (e *Engine) Pull(ctx context.Context) (*models.AppState, error) {
	remote, err := e.remote.Fetch(ctx)
	if err != nil {
		e.logger.Warn("sync_pull_failed", zap.Error(err))
		e.setError(err)
		if entry, ok := e.local.OfflineQueue(); ok {
			return entry.Data, err
		}
		return nil, err
	}

	e.setFetched(remote.LastSyncedAt)

	entry, queued := e.local.OfflineQueue()
	if queued && remote.Data != nil {
		if remote.LastUpdatedAt.IsZero() || entry.Timestamp.After(remote.LastUpdatedAt) {
			e.logger.Info("sync_pull_offline_copy_newer",
				zap.Time("queued_at", entry.Timestamp),
				zap.Time("remote_updated_at", remote.LastUpdatedAt),
			)
			return entry.Data, nil
		}
	}
	if remote.Data == nil {
		if queued {
			return entry.Data, nil
		}
		return nil, nil
	}

	state := &models.AppState{}
	if err := json.Unmarshal(remote.Data, state); err != nil {
		e.logger.Warn("sync_pull_decode_failed", zap.Error(err))
		e.setError(err)
		if queued {
			return entry.Data, err
		}
		return nil, err
	}
	if state.DaySessions == nil {
		state.DaySessions = make(map[string]*models.DaySession)
	}
	return state, nil
}

// Save schedules a push of the given snapshot. Repeated saves within the
// debounce window disarm and rearm the timer, so only the latest snapshot
// is transmitted. immediate bypasses debouncing ("sync now" and queue flush).
func (e *Engine) Save(state *models.AppState, immediate bool) error {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.pending = state
	if !immediate {
		e.timer = time.AfterFunc(e.debounce, func() {
			e.firePending(context.Background())
		})
		e.mu.Unlock()
		return nil
	}
	e.mu.Unlock()
	return e.firePending(context.Background())
}

// firePending pushes the pending snapshot, clearing the register.
func (e *Engine) firePending(ctx context.Context) error {
	e.mu.Lock()
	state := e.pending
	e.pending = nil
	e.timer = nil
	e.mu.Unlock()
	if state == nil {
		return nil
	}
	return e.push(ctx, state)
}

func (e *Engine) push(ctx context.Context, state *models.AppState) error {
	e.mu.Lock()
	online := e.online
	e.syncing = online
	e.mu.Unlock()

	if !online {
		if err := e.local.SaveOfflineQueue(state, e.clock()); err != nil {
			e.logger.Error("sync_queue_write_failed", zap.Error(err))
			return err
		}
		e.mu.Lock()
		e.hasUnsynced = true
		e.mu.Unlock()
		e.logger.Info("sync_push_queued_offline")
		return nil
	}

	raw, err := json.Marshal(state)
	if err != nil {
		e.setError(err)
		return err
	}

	syncedAt, err := e.remote.Push(ctx, raw)
	if err != nil {
		e.logger.Warn("sync_push_failed", zap.Error(err))
		if qErr := e.local.SaveOfflineQueue(state, e.clock()); qErr != nil {
			e.logger.Error("sync_queue_write_failed", zap.Error(qErr))
		}
		e.mu.Lock()
		e.hasUnsynced = true
		e.syncing = false
		e.lastErr = err
		e.mu.Unlock()
		return err
	}

	if err := e.local.ClearOfflineQueue(); err != nil {
		e.logger.Warn("sync_queue_clear_failed", zap.Error(err))
	}
	e.setSynced(syncedAt)
	e.logger.Debug("sync_push_ok", zap.Time("last_synced_at", syncedAt))
	return nil
}

// SetOnline records connectivity. An offline→online transition with a
// queued write triggers exactly one flush attempt; on failure the entry
// stays queued for the next transition or a manual retry.
func (e *Engine) SetOnline(ctx context.Context, online bool) {
	e.mu.Lock()
	wasOnline := e.online
	e.online = online
	e.mu.Unlock()

	if online && !wasOnline {
		if _, ok := e.local.OfflineQueue(); ok {
			if err := e.FlushQueue(ctx); err != nil {
				e.logger.Warn("sync_reconnect_flush_failed", zap.Error(err))
			}
		}
	}
}

// FlushQueue pushes the queued offline write immediately, if one exists.
func (e *Engine) FlushQueue(ctx context.Context) error {
	entry, ok := e.local.OfflineQueue()
	if !ok {
		return nil
	}
	return e.push(ctx, entry.Data)
}

// Stop cancels any pending debounced push without firing it.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.pending = nil
}

// Status returns a snapshot of the sync indicator state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	s := Status{
		Online:      e.online,
		Syncing:     e.syncing,
		HasUnsynced: e.hasUnsynced,
	}
	if e.lastSyncedAt != nil {
		t := *e.lastSyncedAt
		s.LastSyncedAt = &t
	}
	if e.lastErr != nil {
		s.LastError = e.lastErr.Error()
	}
	return s
}

// setSynced records a successful push: the outbound write landed, so the
// unsynced flag comes down.
func (e *Engine) setSynced(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncing = false
	e.hasUnsynced = false
	e.lastErr = nil
	if !at.IsZero() {
		e.lastSyncedAt = &at
	}
}

// setFetched records a successful fetch. A fetch says nothing about the
// queued outbound write, so the unsynced flag is left alone; only a
// successful push lowers it.
func (e *Engine) setFetched(at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncing = false
	e.lastErr = nil
	if !at.IsZero() {
		e.lastSyncedAt = &at
	}
}

func (e *Engine) setError(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncing = false
	e.lastErr = err
}
