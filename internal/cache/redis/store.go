// Package redis provides a CacheStore shared between instances through Redis.
// Entry expiry is delegated to Redis key TTLs.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/davidbz/cinematch/internal/observability"
)

// Store implements domain.CacheStore on a Redis client.
// Backend failures are logged and reported as cache misses.
type Store struct {
	client *redis.Client
	prefix string
}

// NewClient creates a Redis client from config.
func NewClient(cfg Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// NewStore creates a new Redis cache adapter. Keys are namespaced with prefix.
func NewStore(client *redis.Client, prefix string) *Store {
	return &Store{
		client: client,
		prefix: prefix,
	}
}

// Get returns the payload for key, or false on a miss or backend error.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			observability.FromContext(ctx).Warn("redis cache get failed, treating as miss",
				observability.String("key", key),
				observability.Error(err))
		}
		return nil, false
	}

	return payload, true
}

// Set stores payload under key with the given TTL. Non-positive ttl stores nothing.
func (s *Store) Set(ctx context.Context, key string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	if err := s.client.Set(ctx, s.prefix+key, payload, ttl).Err(); err != nil {
		observability.FromContext(ctx).Warn("redis cache set failed",
			observability.String("key", key),
			observability.Duration("ttl", ttl),
			observability.Error(err))
	}
}

// Ping checks connectivity to the backend.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}
