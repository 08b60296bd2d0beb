package blobstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq" // postgres driver
)

// PostgresStore keeps user blobs in a single upsert table.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to Postgres, verifies the connection, and
// ensures the blob table exists.
func NewPostgresStore(databaseURL string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("blobstore: open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("blobstore: ping postgres: %w", err)
	}

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS user_blobs (
			user_id TEXT PRIMARY KEY,
			data JSONB NOT NULL,
			last_updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, fmt.Errorf("blobstore: ensure user_blobs table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Get returns the stored blob for a user, nil when absent.
func (s *PostgresStore) Get(ctx context.Context, userID string) (json.RawMessage, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT data FROM user_blobs WHERE user_id = $1`, userID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("blobstore: get %s: %w", userID, err)
	}
	return raw, nil
}

// Set stores the blob for a user, replacing any previous value.
func (s *PostgresStore) Set(ctx context.Context, userID string, data json.RawMessage) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO user_blobs (user_id, data, last_updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET data = $2, last_updated_at = now()
	`, userID, []byte(data))
	if err != nil {
		return fmt.Errorf("blobstore: set %s: %w", userID, err)
	}
	return nil
}

// Ping verifies the database connection.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database connection pool.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
