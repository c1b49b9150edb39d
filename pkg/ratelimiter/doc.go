// Package ratelimiter implements a token bucket rate limiter.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each request takes one token; a request finding the bucket
// empty is denied and reports when the next refill happens.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.DefaultConfig())
//	res, err := limiter.Allow(ctx, "login:"+ip)
//	if !res.Allowed() {
//		// wait res.RetryAfter()
//	}
package ratelimiter
