package middleware

import (
	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

// Session keys of the values staged for the next request.
const (
	ErrorsSessionKey   = "errors"
	OldInputSessionKey = "oldFormData"
)

// Flash moves the validation errors and old form input staged by
// ValidationErrors from the session to the views of this request. Both are
// shared as empty maps when nothing was staged.
type Flash struct{}

// NewFlash creates the flash middleware.
func NewFlash() *Flash {
	return &Flash{}
}

// Process fails with ErrNoSession when no session is attached to c.
func (m *Flash) Process(c *router.Context, next router.Action) error {
	s := c.Session()
	if s == nil {
		return ErrNoSession
	}

	errs := map[string][]string{}
	if _, err := s.PullInto(ErrorsSessionKey, &errs); err != nil {
		return err
	}
	c.Share(view.ErrorsKey, errs)

	old := map[string]string{}
	if _, err := s.PullInto(OldInputSessionKey, &old); err != nil {
		return err
	}
	c.Share(view.OldInputKey, old)

	return next()
}
