package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/cinematch/internal/cache/memory"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestStore_GetSet(t *testing.T) {
	ctx := context.Background()

	t.Run("should miss for a key never set", func(t *testing.T) {
		store := memory.NewStore()

		payload, found := store.Get(ctx, "Movie:1")

		require.False(t, found)
		require.Nil(t, payload)
	})

	t.Run("should return stored payload before ttl elapses", func(t *testing.T) {
		clock := newFakeClock()
		store := memory.NewStore(memory.WithClock(clock.Now))

		store.Set(ctx, "Genre:18", []byte(`[{"id":42}]`), 30*time.Minute)
		clock.Advance(29 * time.Minute)

		payload, found := store.Get(ctx, "Genre:18")

		require.True(t, found)
		require.JSONEq(t, `[{"id":42}]`, string(payload))
	})

	t.Run("should miss and purge once ttl elapses", func(t *testing.T) {
		clock := newFakeClock()
		store := memory.NewStore(memory.WithClock(clock.Now))

		store.Set(ctx, "Genre:18", []byte("x"), 30*time.Minute)
		clock.Advance(31 * time.Minute)

		_, found := store.Get(ctx, "Genre:18")

		require.False(t, found)
		require.Equal(t, 0, store.Len())
	})

	t.Run("should treat an entry exactly ttl old as expired", func(t *testing.T) {
		clock := newFakeClock()
		store := memory.NewStore(memory.WithClock(clock.Now))

		store.Set(ctx, "Movie:7", []byte("x"), time.Hour)
		clock.Advance(time.Hour)

		_, found := store.Get(ctx, "Movie:7")

		require.False(t, found)
	})

	t.Run("should replace the whole entry on refresh", func(t *testing.T) {
		clock := newFakeClock()
		store := memory.NewStore(memory.WithClock(clock.Now))

		store.Set(ctx, "Movie:7", []byte("old"), time.Hour)
		clock.Advance(50 * time.Minute)
		store.Set(ctx, "Movie:7", []byte("new"), time.Hour)
		clock.Advance(50 * time.Minute)

		payload, found := store.Get(ctx, "Movie:7")

		require.True(t, found)
		require.Equal(t, "new", string(payload))
	})

	t.Run("should ignore non-positive ttl", func(t *testing.T) {
		store := memory.NewStore()

		store.Set(ctx, "Movie:7", []byte("x"), 0)

		_, found := store.Get(ctx, "Movie:7")
		require.False(t, found)
		require.Equal(t, 0, store.Len())
	})

	t.Run("should not let callers mutate stored payloads", func(t *testing.T) {
		store := memory.NewStore()
		original := []byte("abc")

		store.Set(ctx, "k", original, time.Minute)
		original[0] = 'z'

		first, _ := store.Get(ctx, "k")
		first[1] = 'z'

		second, found := store.Get(ctx, "k")
		require.True(t, found)
		require.Equal(t, "abc", string(second))
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	const workers = 32
	const keys = 50

	var wg sync.WaitGroup
	for w := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range keys {
				key := fmt.Sprintf("Actor:%d", k)
				store.Set(ctx, key, []byte(fmt.Sprintf("%d", w)), time.Minute)
				_, found := store.Get(ctx, key)
				assert.True(t, found)
			}
		}()
	}
	wg.Wait()

	require.Equal(t, keys, store.Len())
}
