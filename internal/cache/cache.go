// Package cache is a small Redis-backed byte cache used for backend lookup
// tables that change rarely (e.g. SAC ticket types). It is entirely optional:
// a nil client disables caching and every lookup falls through to the backend.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Repo implements a byte-oriented cache over Redis.
type Repo struct {
	client redis.UniversalClient
}

// New creates a Repo with the given Redis client. A nil client is allowed
// and produces a disabled cache.
func New(client redis.UniversalClient) *Repo {
	return &Repo{client: client}
}

// Enabled reports whether a Redis client is configured.
func (r *Repo) Enabled() bool {
	return r != nil && r.client != nil
}

// Set stores a value with the given key and TTL. A disabled cache is a no-op.
func (r *Repo) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}
	if key == "" {
		return errors.New("key cannot be empty")
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Get retrieves a value by key. A missing key (or disabled cache) returns
// (nil, nil).
func (r *Repo) Get(ctx context.Context, key string) ([]byte, error) {
	if !r.Enabled() {
		return nil, nil
	}
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return []byte(result), nil
}

// Delete removes a key, reporting whether it existed.
func (r *Repo) Delete(ctx context.Context, key string) (bool, error) {
	if !r.Enabled() {
		return false, nil
	}
	if key == "" {
		return false, errors.New("key cannot be empty")
	}

	deleted, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("redis del: %w", err)
	}
	return deleted > 0, nil
}
