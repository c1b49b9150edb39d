package middleware

import "github.com/dmitrymomot/catalyst/pkg/router"

// GuestOnly sends authenticated users away from pages meant for guests,
// such as login and register.
type GuestOnly struct {
	redirect string
}

// NewGuestOnly creates the guest-only middleware.
func NewGuestOnly() *GuestOnly {
	return &GuestOnly{redirect: "/"}
}

// Process redirects authenticated visitors home and lets guests through.
func (m *GuestOnly) Process(c *router.Context, next router.Action) error {
	if c.Session().IsAuthenticated() {
		return c.Redirect(m.redirect)
	}
	return next()
}

// AuthRequired sends anonymous visitors to the login page.
type AuthRequired struct {
	redirect string
}

// NewAuthRequired creates the sign-in guard.
func NewAuthRequired() *AuthRequired {
	return &AuthRequired{redirect: "/login"}
}

// Process redirects guests to the login page.
func (m *AuthRequired) Process(c *router.Context, next router.Action) error {
	if !c.Session().IsAuthenticated() {
		return c.Redirect(m.redirect)
	}
	return next()
}
