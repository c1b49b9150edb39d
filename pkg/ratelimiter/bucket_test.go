package ratelimiter_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/catalyst/pkg/ratelimiter"
)

func newBucket(t *testing.T, cfg ratelimiter.Config) (*ratelimiter.Bucket, *ratelimiter.MemoryStore) {
	t.Helper()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	t.Cleanup(func() { _ = store.Close() })

	b, err := ratelimiter.NewBucket(store, cfg)
	require.NoError(t, err)
	return b, store
}

func TestNewBucket(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(0))
	defer store.Close()

	tests := []struct {
		name string
		cfg  ratelimiter.Config
	}{
		{"zero capacity", ratelimiter.Config{Capacity: 0, RefillRate: 1, RefillInterval: time.Second}},
		{"zero refill rate", ratelimiter.Config{Capacity: 1, RefillRate: 0, RefillInterval: time.Second}},
		{"zero interval", ratelimiter.Config{Capacity: 1, RefillRate: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ratelimiter.NewBucket(store, tt.cfg)
			assert.ErrorIs(t, err, ratelimiter.ErrInvalidConfig)
		})
	}

	_, err := ratelimiter.NewBucket(store, ratelimiter.DefaultConfig())
	assert.NoError(t, err)
}

func TestBucketAllow(t *testing.T) {
	t.Parallel()

	t.Run("exhausts capacity", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 3, RefillRate: 1, RefillInterval: time.Hour})
		ctx := context.Background()

		for i := 2; i >= 0; i-- {
			res, err := b.Allow(ctx, "k")
			require.NoError(t, err)
			assert.True(t, res.Allowed())
			assert.Equal(t, i, res.Remaining)
			assert.Equal(t, 3, res.Limit)
			assert.Zero(t, res.RetryAfter())
		}

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.False(t, res.Allowed())
		assert.Greater(t, res.RetryAfter(), time.Duration(0))

		// Denials do not accumulate debt.
		res, err = b.Status(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("keys are independent", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
		ctx := context.Background()

		res, err := b.Allow(ctx, "a")
		require.NoError(t, err)
		assert.True(t, res.Allowed())

		res, err = b.Allow(ctx, "b")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("refills over time", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: 20 * time.Millisecond})
		ctx := context.Background()

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		require.True(t, res.Allowed())

		res, err = b.Allow(ctx, "k")
		require.NoError(t, err)
		require.False(t, res.Allowed())

		time.Sleep(50 * time.Millisecond)

		res, err = b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("reset restores capacity", func(t *testing.T) {
		t.Parallel()
		b, store := newBucket(t, ratelimiter.Config{Capacity: 1, RefillRate: 1, RefillInterval: time.Hour})
		ctx := context.Background()

		_, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 1, store.Len())

		require.NoError(t, b.Reset(ctx, "k"))
		assert.Equal(t, 0, store.Len())

		res, err := b.Allow(ctx, "k")
		require.NoError(t, err)
		assert.True(t, res.Allowed())
	})

	t.Run("rejects non-positive counts", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.DefaultConfig())

		_, err := b.AllowN(context.Background(), "k", 0)
		assert.ErrorIs(t, err, ratelimiter.ErrInvalidTokenCount)
	})

	t.Run("honours canceled context", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.DefaultConfig())

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := b.Allow(ctx, "k")
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("concurrent callers share the budget", func(t *testing.T) {
		t.Parallel()
		b, _ := newBucket(t, ratelimiter.Config{Capacity: 10, RefillRate: 1, RefillInterval: time.Hour})

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			allowed int
		)
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := b.Allow(context.Background(), "k")
				if err == nil && res.Allowed() {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 10, allowed)
	})
}

func TestMemoryStoreClose(t *testing.T) {
	t.Parallel()

	store := ratelimiter.NewMemoryStore(ratelimiter.WithCleanupInterval(time.Millisecond))
	assert.NoError(t, store.Close())
	assert.NoError(t, store.Close())
}
