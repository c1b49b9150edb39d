package middleware

import (
	"github.com/dmitrymomot/catalyst/pkg/requestid"
	"github.com/dmitrymomot/catalyst/pkg/router"
)

// RequestID makes sure the request context carries a request id. An id set
// by the HTTP level requestid.Middleware is kept.
type RequestID struct{}

// NewRequestID creates the request id middleware.
func NewRequestID() *RequestID {
	return &RequestID{}
}

// Process attaches an id to the request context unless one is already
// there, and echoes it in the response header.
func (m *RequestID) Process(c *router.Context, next router.Action) error {
	if requestid.FromContext(c) == "" {
		id := requestid.Resolve(c.Request().Header.Get(requestid.Header))
		c.SetContext(requestid.WithContext(c.Request().Context(), id))
		c.ResponseWriter().Header().Set(requestid.Header, id)
	}
	return next()
}
