package middleware

import (
	"math"
	"strconv"

	"github.com/dmitrymomot/catalyst/pkg/clientip"
	"github.com/dmitrymomot/catalyst/pkg/ratelimiter"
	"github.com/dmitrymomot/catalyst/pkg/router"
)

// Throttle limits requests per client address and matched route, so every
// spelling of a path that reaches the same route shares one bucket. It sets the
// X-RateLimit-* headers on every response and fails with ErrTooManyRequests
// and a Retry-After header once the bucket is empty.
type Throttle struct {
	limiter *ratelimiter.Bucket
}

// NewThrottle creates the middleware drawing tokens from limiter.
func NewThrottle(limiter *ratelimiter.Bucket) *Throttle {
	return &Throttle{limiter: limiter}
}

// Process takes one token for the request or fails with ErrTooManyRequests.
func (m *Throttle) Process(c *router.Context, next router.Action) error {
	route := c.Route()
	if route == "" {
		route = router.NormalizePath(c.Path())
	}
	key := c.Method() + " " + route + " " + clientip.FromRequest(c.Request())

	res, err := m.limiter.Allow(c, key)
	if err != nil {
		return err
	}

	h := c.ResponseWriter().Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))

	if !res.Allowed() {
		seconds := int(math.Ceil(res.RetryAfter().Seconds()))
		h.Set("Retry-After", strconv.Itoa(max(1, seconds)))
		return ErrTooManyRequests
	}

	return next()
}
