package ratelimiter

import (
	"context"
	"fmt"
)

// Bucket implements a token bucket rate limiter.
type Bucket struct {
	store  Store
	config Config
}

// NewBucket creates a new token bucket rate limiter.
func NewBucket(store Store, config Config) (*Bucket, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	return &Bucket{
		store:  store,
		config: config,
	}, nil
}

// Allow takes one token for key.
func (b *Bucket) Allow(ctx context.Context, key string) (*Result, error) {
	return b.AllowN(ctx, key, 1)
}

// AllowN takes n tokens for key. A denied request takes nothing.
func (b *Bucket) AllowN(ctx context.Context, key string, n int) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	return b.take(ctx, key, n)
}

// Status returns the current state without consuming tokens.
func (b *Bucket) Status(ctx context.Context, key string) (*Result, error) {
	return b.take(ctx, key, 0)
}

// Reset refills the bucket of key.
func (b *Bucket) Reset(ctx context.Context, key string) error {
	return b.store.Reset(ctx, key)
}

func (b *Bucket) take(ctx context.Context, key string, n int) (*Result, error) {
	remaining, resetAt, err := b.store.ConsumeTokens(ctx, key, n, b.config)
	if err != nil {
		return nil, err
	}

	return &Result{
		Limit:     b.config.Capacity,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
