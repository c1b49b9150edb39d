package session

import "time"

// Option is a functional option for configuring the Manager
type Option func(*Manager)

// WithStore sets a custom session store
func WithStore(store Store) Option {
	return func(m *Manager) {
		m.store = store
	}
}

// WithConfig sets custom configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithCookieName sets the session cookie name
func WithCookieName(name string) Option {
	return func(m *Manager) {
		m.config.CookieName = name
	}
}

// WithTTL sets the idle lifetime of sessions
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.config.TTL = ttl
	}
}

// WithSecureCookies sets the Secure flag of the session cookie
func WithSecureCookies(secure bool) Option {
	return func(m *Manager) {
		m.config.SecureCookies = secure
	}
}
