package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"net/http"
	"time"
)

// Manager handles session operations
type Manager struct {
	store  Store
	config Config
	signer *signer
}

// New creates a session manager. At least one secret of 32 characters or more
// is required to sign the session cookie. Without WithStore, sessions are
// kept in memory.
func New(secrets []string, opts ...Option) (*Manager, error) {
	s, err := newSigner(secrets)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		config: DefaultConfig(),
		signer: s,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.config.CookieName == "" {
		m.config.CookieName = "sid"
	}
	if m.config.TTL <= 0 {
		m.config.TTL = DefaultConfig().TTL
	}
	if m.store == nil {
		m.store = NewMemoryStore(m.config.CleanupInterval)
	}

	return m, nil
}

// Start returns the session of the request, or a fresh anonymous one when
// the cookie is missing, forged or points at an expired session. The cookie
// is (re)written with a renewed lifetime, so Start must run before anything
// is written to w.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, r *http.Request) (*Session, error) {
	session, err := m.load(ctx, r)
	if err != nil {
		if !isMissing(err) {
			return nil, err
		}

		session = NewSession(m.config.TTL)
		if session.Token, err = generateToken(); err != nil {
			return nil, err
		}
	}

	session.Touch()
	m.writeToken(w, session.Token)
	return session, nil
}

// Save persists the session and extends its expiry. Destroyed sessions are skipped.
func (m *Manager) Save(ctx context.Context, session *Session) error {
	if session == nil {
		return ErrInvalidSession
	}
	if session.Token == "" {
		return nil
	}

	session.ExpiresAt = time.Now().Add(m.config.TTL)
	return m.store.Save(ctx, session)
}

// Regenerate moves the session to a new token and drops the old one. Call it
// whenever the privilege level changes, such as on login.
func (m *Manager) Regenerate(ctx context.Context, w http.ResponseWriter, session *Session) error {
	if session == nil {
		return ErrInvalidSession
	}

	token, err := generateToken()
	if err != nil {
		return err
	}

	if session.Token != "" {
		if err := m.store.Delete(ctx, session.Token); err != nil {
			return err
		}
	}

	session.Token = token
	m.writeToken(w, token)
	return m.Save(ctx, session)
}

// Destroy deletes the session, clears its data and expires the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, session *Session) error {
	if session == nil {
		return ErrInvalidSession
	}

	if session.Token != "" {
		if err := m.store.Delete(ctx, session.Token); err != nil {
			return err
		}
	}

	session.Clear()
	session.UserID = nil
	session.Token = ""
	m.clearToken(w)
	return nil
}

// Close releases the store when it holds resources.
func (m *Manager) Close() error {
	if c, ok := m.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (m *Manager) load(ctx context.Context, r *http.Request) (*Session, error) {
	token, err := m.readToken(r)
	if err != nil {
		return nil, err
	}

	session, err := m.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.IsExpired() {
		return nil, ErrSessionExpired
	}
	return session, nil
}

func isMissing(err error) bool {
	return errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrInvalidToken)
}

// generateToken creates a cryptographically secure token
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
