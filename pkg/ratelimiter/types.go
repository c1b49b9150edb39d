package ratelimiter

import "time"

// Result contains the result of a rate limit check.
type Result struct {
	Limit     int       // Maximum tokens (bucket capacity)
	Remaining int       // Tokens remaining, negative when denied
	ResetAt   time.Time // Time when tokens will be refilled
}

// Allowed returns whether the request is allowed based on remaining tokens.
func (r *Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long to wait before the next request.
// Returns 0 if the request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(0, time.Until(r.ResetAt))
}

// Config defines the token bucket configuration.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"10"`
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"1"`
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"30s"`
}

// DefaultConfig allows bursts of 10 requests and one more every 30 seconds.
func DefaultConfig() Config {
	return Config{
		Capacity:       10,
		RefillRate:     1,
		RefillInterval: 30 * time.Second,
	}
}
