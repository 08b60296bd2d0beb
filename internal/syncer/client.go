// Package syncer keeps the local AppState reconciled with the remote
// per-user blob store: debounced pushes, a single-slot offline queue, and
// last-write-wins pulls.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const userIDHeader = "X-User-Id"

// RemoteState is the result of a fetch: the stored blob (nil when the user
// has no remote state yet) plus server-side timestamps.
type RemoteState struct {
	Data          json.RawMessage
	LastUpdatedAt time.Time
	LastSyncedAt  time.Time
}

// Client is a thin HTTP wrapper over the blob-store endpoint.
type Client struct {
	baseURL string
	userID  string
	http    *http.Client
}

// NewClient creates a client for the given endpoint base URL and opaque
// user identifier.
func NewClient(baseURL, userID string) *Client {
	return &Client{
		baseURL: baseURL,
		userID:  userID,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// UserID returns the identifier the client pushes and fetches under.
func (c *Client) UserID() string { return c.userID }

type fetchResponse struct {
	Data         json.RawMessage `json:"data"`
	LastSyncedAt time.Time       `json:"lastSyncedAt"`
}

type pushRequest struct {
	Data json.RawMessage `json:"data"`
}

type pushResponse struct {
	Success      bool      `json:"success"`
	LastSyncedAt time.Time `json:"lastSyncedAt"`
}

type blobMeta struct {
	Meta struct {
		LastUpdatedAt time.Time `json:"lastUpdatedAt"`
		UserID        string    `json:"userId"`
	} `json:"_meta"`
}

// Fetch retrieves the remote blob for the client's user.
func (c *Client) Fetch(ctx context.Context) (*RemoteState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data", nil)
	if err != nil {
		return nil, fmt.Errorf("syncer: build fetch request: %w", err)
	}
	req.Header.Set(userIDHeader, c.userID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("syncer: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("syncer: fetch failed with status %d", resp.StatusCode)
	}

	var payload fetchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("syncer: decode fetch response: %w", err)
	}

	remote := &RemoteState{LastSyncedAt: payload.LastSyncedAt}
	if len(payload.Data) > 0 && string(payload.Data) != "null" {
		remote.Data = payload.Data
		var meta blobMeta
		// The blob carries server-injected _meta; absence leaves the zero
		// time, which the pull path treats as "offline copy wins".
		if err := json.Unmarshal(payload.Data, &meta); err == nil {
			remote.LastUpdatedAt = meta.Meta.LastUpdatedAt
		}
	}
	return remote, nil
}

// Push stores the blob remotely and returns the server's sync timestamp.
func (c *Client) Push(ctx context.Context, data json.RawMessage) (time.Time, error) {
	body, err := json.Marshal(pushRequest{Data: data})
	if err != nil {
		return time.Time{}, fmt.Errorf("syncer: marshal push request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/data", bytes.NewReader(body))
	if err != nil {
		return time.Time{}, fmt.Errorf("syncer: build push request: %w", err)
	}
	req.Header.Set(userIDHeader, c.userID)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("syncer: push: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return time.Time{}, fmt.Errorf("syncer: push failed with status %d", resp.StatusCode)
	}

	var payload pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return time.Time{}, fmt.Errorf("syncer: decode push response: %w", err)
	}
	return payload.LastSyncedAt, nil
}
