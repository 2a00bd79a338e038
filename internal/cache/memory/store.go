// Package memory provides the process-wide in-memory CacheStore.
package memory

import (
	"bytes"
	"context"
	"sync"
	"time"
)

// entry is immutable once stored; a refresh replaces the whole entry.
type entry struct {
	payload  []byte
	storedAt time.Time
	ttl      time.Duration
}

func (e entry) validAt(now time.Time) bool {
	return now.Sub(e.storedAt) < e.ttl
}

// Store is a concurrency-safe key/value store with per-entry TTL.
// Expired entries are purged lazily on the next Get; there is no background sweep.
type Store struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates an empty store. Construct it once per process.
func NewStore(opts ...Option) *Store {
	s := &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns a copy of the payload stored under key if it has not expired.
func (s *Store) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	e, exists := s.entries[key]
	s.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if !e.validAt(s.now()) {
		s.purge(key, e.storedAt)
		return nil, false
	}

	return bytes.Clone(e.payload), true
}

// Set stores a copy of payload under key for ttl. Non-positive ttl stores nothing.
func (s *Store) Set(_ context.Context, key string, payload []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}

	e := entry{
		payload:  bytes.Clone(payload),
		storedAt: s.now(),
		ttl:      ttl,
	}

	s.mu.Lock()
	s.entries[key] = e
	s.mu.Unlock()
}

// Len returns the number of entries held, including expired ones not yet purged.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// purge deletes key unless it was refreshed after the expired read.
func (s *Store) purge(key string, storedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.entries[key]; ok && current.storedAt.Equal(storedAt) {
		delete(s.entries, key)
	}
}
