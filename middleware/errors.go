package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/catalyst/pkg/router"
)

var (
	// ErrInvalidCSRFToken is returned by CSRFGuard when the submitted token
	// does not match the session token.
	ErrInvalidCSRFToken = router.HTTPError{Code: http.StatusForbidden, Key: "invalid_csrf_token"}

	// ErrTooManyRequests is returned by Throttle once a client has used up
	// its request budget.
	ErrTooManyRequests = router.HTTPError{Code: http.StatusTooManyRequests, Key: "too_many_requests"}

	// ErrNoSession is returned by middlewares that need the session middleware
	// to run before them.
	ErrNoSession = errors.New("middleware.no_session")
)

// PanicError is a panic recovered by Recover.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// IsPanicError reports whether err wraps a recovered panic.
func IsPanicError(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}
