package blobstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps user blobs in Redis, one key per user.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(redisURL string) (*RedisStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("blobstore: parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("blobstore: ping redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

// Client exposes the underlying Redis client for sharing (rate limiting).
func (s *RedisStore) Client() *redis.Client { return s.client }

func dataKey(userID string) string {
	return fmt.Sprintf("ynaht:user:%s:data", userID)
}

// Get returns the stored blob for a user, nil when absent.
func (s *RedisStore) Get(ctx context.Context, userID string) (json.RawMessage, error) {
	raw, err := s.client.Get(ctx, dataKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("blobstore: get %s: %w", userID, err)
	}
	return raw, nil
}

// Set stores the blob for a user.
func (s *RedisStore) Set(ctx context.Context, userID string, data json.RawMessage) error {
	if err := s.client.Set(ctx, dataKey(userID), []byte(data), 0).Err(); err != nil {
		return fmt.Errorf("blobstore: set %s: %w", userID, err)
	}
	return nil
}

// Ping verifies the Redis connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
