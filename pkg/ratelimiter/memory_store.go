package ratelimiter

import (
	"context"
	"sync"
	"time"
)

const staleAfter = time.Hour

type bucket struct {
	tokens     int
	lastRefill time.Time
	lastAccess time.Time
}

// MemoryStore keeps buckets in process.
type MemoryStore struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	cleanupInterval time.Duration
	stop            chan struct{}
	closeOnce       sync.Once
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets how often buckets idle for an hour are dropped.
// Zero disables the cleanup.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(ms *MemoryStore) {
		ms.cleanupInterval = interval
	}
}

// NewMemoryStore creates a store cleaning up idle buckets every five minutes.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	ms := &MemoryStore{
		buckets:         make(map[string]*bucket),
		cleanupInterval: 5 * time.Minute,
		stop:            make(chan struct{}),
	}

	for _, opt := range opts {
		opt(ms)
	}

	if ms.cleanupInterval > 0 {
		go ms.cleanup()
	}

	return ms
}

func (ms *MemoryStore) ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (int, time.Time, error) {
	if err := ctx.Err(); err != nil {
		return 0, time.Time{}, err
	}

	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	b, ok := ms.buckets[key]
	if !ok {
		b = &bucket{tokens: config.Capacity, lastRefill: now}
		ms.buckets[key] = b
	}

	// Whole intervals only; capped so that a long idle bucket cannot overflow.
	maxIntervals := int64(config.Capacity/config.RefillRate + 1)
	intervals := int(min(int64(now.Sub(b.lastRefill)/config.RefillInterval), maxIntervals))
	if intervals > 0 {
		b.tokens = min(b.tokens+intervals*config.RefillRate, config.Capacity)
		b.lastRefill = now
	}

	b.lastAccess = now
	resetAt := b.lastRefill.Add(config.RefillInterval)

	// A denied request does not dig the bucket deeper.
	if b.tokens < tokens {
		return b.tokens - tokens, resetAt, nil
	}
	b.tokens -= tokens

	return b.tokens, resetAt, nil
}

func (ms *MemoryStore) Reset(_ context.Context, key string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	delete(ms.buckets, key)
	return nil
}

// Len returns the number of tracked buckets.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.buckets)
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (ms *MemoryStore) Close() error {
	ms.closeOnce.Do(func() { close(ms.stop) })
	return nil
}

func (ms *MemoryStore) cleanup() {
	ticker := time.NewTicker(ms.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ms.removeStale()
		case <-ms.stop:
			return
		}
	}
}

func (ms *MemoryStore) removeStale() {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	now := time.Now()
	for key, b := range ms.buckets {
		if now.Sub(b.lastAccess) > staleAfter {
			delete(ms.buckets, key)
		}
	}
}
