// Package storage provides the namespaced local durable store backing the
// client: the full AppState blob, the user identifier, and the single-slot
// offline write queue.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/peterbourgon/diskv/v3"

	"github.com/ynaht/ynaht/internal/models"
)

const (
	keyState        = "state"
	keyUserID       = "user_id"
	keyOfflineQueue = "offline_queue"
)

// QueueEntry is the offline write queue slot: the latest unsynced state
// snapshot and when it was written. Only one entry is ever kept; a newer
// write overwrites the slot.
type QueueEntry struct {
	Data      *models.AppState `json:"data"`
	Timestamp time.Time        `json:"timestamp"`
}

// Local is a diskv-backed key-value store under the data directory.
type Local struct {
	d *diskv.Diskv
}

// DefaultDataDir resolves the default data directory (~/.ynaht).
func DefaultDataDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return home + string(os.PathSeparator) + ".ynaht", nil
}

// NewLocal opens (creating if needed) the local store at baseDir.
func NewLocal(baseDir string) (*Local, error) {
	if baseDir == "" {
		return nil, errors.New("storage: base directory required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure data dir: %w", err)
	}
	return &Local{d: diskv.New(diskv.Options{
		BasePath:     baseDir,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// LoadState reads the persisted AppState, falling back to def when the key
// is absent or the stored JSON is corrupt. The load path never fails.
func (l *Local) LoadState(def *models.AppState) *models.AppState {
	raw, err := l.d.Read(keyState)
	if err != nil {
		return def
	}
	state := &models.AppState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return def
	}
	if state.DaySessions == nil {
		state.DaySessions = make(map[string]*models.DaySession)
	}
	return state
}

// SaveState persists the AppState blob.
func (l *Local) SaveState(state *models.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: marshal state: %w", err)
	}
	if err := l.d.Write(keyState, raw); err != nil {
		return fmt.Errorf("storage: write state: %w", err)
	}
	return nil
}

// UserID returns the stored user identifier, generating and persisting a
// new UUID v4 on first access.
func (l *Local) UserID() (string, error) {
	if id, ok := l.ExistingUserID(); ok {
		return id, nil
	}
	id := uuid.New().String()
	if err := l.d.Write(keyUserID, []byte(id)); err != nil {
		return "", fmt.Errorf("storage: write user id: %w", err)
	}
	return id, nil
}

// ExistingUserID returns the stored user identifier if one exists.
func (l *Local) ExistingUserID() (string, bool) {
	raw, err := l.d.Read(keyUserID)
	if err != nil || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// SetUserID overwrites the stored user identifier. Used when linking this
// device to another device's remote blob.
func (l *Local) SetUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("storage: invalid user id: %w", err)
	}
	if err := l.d.Write(keyUserID, []byte(id)); err != nil {
		return fmt.Errorf("storage: write user id: %w", err)
	}
	return nil
}

// OfflineQueue returns the queued write, if any. Corrupt entries read as
// absent.
func (l *Local) OfflineQueue() (*QueueEntry, bool) {
	raw, err := l.d.Read(keyOfflineQueue)
	if err != nil {
		return nil, false
	}
	entry := &QueueEntry{}
	if err := json.Unmarshal(raw, entry); err != nil || entry.Data == nil {
		return nil, false
	}
	return entry, true
}

// SaveOfflineQueue overwrites the offline slot with the given snapshot.
func (l *Local) SaveOfflineQueue(state *models.AppState, timestamp time.Time) error {
	raw, err := json.Marshal(QueueEntry{Data: state, Timestamp: timestamp})
	if err != nil {
		return fmt.Errorf("storage: marshal offline queue: %w", err)
	}
	if err := l.d.Write(keyOfflineQueue, raw); err != nil {
		return fmt.Errorf("storage: write offline queue: %w", err)
	}
	return nil
}

// ClearOfflineQueue removes the queued write. Clearing an empty slot is
// not an error.
func (l *Local) ClearOfflineQueue() error {
	if err := l.d.Erase(keyOfflineQueue); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: clear offline queue: %w", err)
	}
	return nil
}

// Wipe erases everything in the store.
func (l *Local) Wipe() error {
	return l.d.EraseAll()
}
