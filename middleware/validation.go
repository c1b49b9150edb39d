package middleware

import (
	"errors"
	"net/url"

	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/validator"
)

// ValidationErrors turns a validator.ValidationError returned by the chain
// into a redirect back to the form. The errors and the submitted input,
// minus secret fields, are staged in the session for Flash to pick up.
type ValidationErrors struct {
	excluded map[string]bool
	fallback string
}

// NewValidationErrors creates the validation error handler.
func NewValidationErrors() *ValidationErrors {
	return &ValidationErrors{
		excluded: map[string]bool{"password": true, "confirmPassword": true},
		fallback: "/",
	}
}

// Process turns a validator.ValidationError of the chain into flashed
// messages and old input, then redirects back to the form.
func (m *ValidationErrors) Process(c *router.Context, next router.Action) error {
	err := next()
	if err == nil {
		return nil
	}

	var verr validator.ValidationError
	if !errors.As(err, &verr) {
		return err
	}

	s := c.Session()
	if s == nil {
		return err
	}

	s.Set(ErrorsSessionKey, map[string][]string(url.Values(verr)))

	old := c.Input()
	for field := range m.excluded {
		delete(old, field)
	}
	s.Set(OldInputSessionKey, old)

	return c.RedirectBack(m.fallback)
}
