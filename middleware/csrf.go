package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/view"
)

// CSRFSessionKey is the session key holding the CSRF token.
const CSRFSessionKey = "csrf_token"

// CSRFToken makes sure the session holds a CSRF token and shares it with views.
type CSRFToken struct{}

// NewCSRFToken creates the token issuing middleware.
func NewCSRFToken() *CSRFToken {
	return &CSRFToken{}
}

// Process makes sure the session holds a token and shares it with the views.
func (m *CSRFToken) Process(c *router.Context, next router.Action) error {
	s := c.Session()
	if s == nil {
		return ErrNoSession
	}

	token, ok := s.GetString(CSRFSessionKey)
	if !ok || token == "" {
		b := make([]byte, 32)
		if _, err := rand.Read(b); err != nil {
			return err
		}
		token = hex.EncodeToString(b)
		s.Set(CSRFSessionKey, token)
	}

	c.Share(view.CSRFTokenKey, token)
	return next()
}

// CSRFGuard rejects state changing requests whose csrf_token form field does
// not match the session token. A valid token is consumed.
type CSRFGuard struct {
	methods map[string]bool
}

// NewCSRFGuard creates the token checking middleware.
func NewCSRFGuard() *CSRFGuard {
	return &CSRFGuard{methods: map[string]bool{
		http.MethodPost:   true,
		http.MethodPut:    true,
		http.MethodPatch:  true,
		http.MethodDelete: true,
	}}
}

// Process fails with ErrInvalidCSRFToken when a state changing request
// carries no token or a wrong one.
func (m *CSRFGuard) Process(c *router.Context, next router.Action) error {
	if !m.methods[c.Request().Method] {
		return next()
	}

	s := c.Session()
	if s == nil {
		return ErrNoSession
	}

	expected, _ := s.GetString(CSRFSessionKey)
	submitted := c.FormValue(view.CSRFFieldName)
	if expected == "" || subtle.ConstantTimeCompare([]byte(expected), []byte(submitted)) != 1 {
		return ErrInvalidCSRFToken
	}

	s.Delete(CSRFSessionKey)
	return next()
}
