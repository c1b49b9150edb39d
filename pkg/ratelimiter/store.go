package ratelimiter

import (
	"context"
	"time"
)

// Store keeps the bucket state.
type Store interface {
	// ConsumeTokens refills the bucket of key, then takes tokens from it. A
	// negative remaining count means the request must be denied.
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}
