package middleware

import (
	"errors"

	"github.com/dmitrymomot/catalyst/pkg/router"
	"github.com/dmitrymomot/catalyst/pkg/session"
)

// Session starts the session of the request and saves it once the rest of
// the chain has run, even when the chain failed or panicked.
type Session struct {
	manager *session.Manager
}

// NewSession creates the middleware backed by manager.
func NewSession(manager *session.Manager) *Session {
	return &Session{manager: manager}
}

// Process fails with session.ErrSessionAlreadyActive when a session is
// already attached to c.
func (m *Session) Process(c *router.Context, next router.Action) (err error) {
	if c.Session() != nil {
		return session.ErrSessionAlreadyActive
	}

	s, err := m.manager.Start(c, c.ResponseWriter(), c.Request())
	if err != nil {
		return err
	}
	c.SetSession(s)

	defer func() {
		if saveErr := m.manager.Save(c, s); saveErr != nil {
			err = errors.Join(err, saveErr)
		}
	}()
	return next()
}
