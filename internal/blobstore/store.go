// Package blobstore provides the remote per-user blob persistence backends
// for the sync service.
package blobstore

import (
	"context"
	"encoding/json"
)

// Store persists one opaque JSON blob per user. Get returns nil without an
// error when the user has no stored blob.
type Store interface {
	Get(ctx context.Context, userID string) (json.RawMessage, error)
	Set(ctx context.Context, userID string, data json.RawMessage) error
	Ping(ctx context.Context) error
	Close() error
}
