package session

import "time"

// Config holds session configuration
type Config struct {
	// CookieName is the name of the session cookie (default: "sid")
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"sid"`

	// Secrets sign the session cookie. The first one signs, all of them verify.
	Secrets []string `env:"SESSION_SECRET,required" envSeparator:","`

	// TTL is the idle lifetime of a session, renewed on every request
	TTL time.Duration `env:"SESSION_TTL" envDefault:"2h"`

	// CleanupInterval for expired sessions in the memory store (0 to disable)
	CleanupInterval time.Duration `env:"SESSION_CLEANUP_INTERVAL" envDefault:"5m"`

	// SecureCookies enables the Secure flag on session cookies (recommended for production)
	SecureCookies bool `env:"SESSION_SECURE_COOKIES" envDefault:"false"`

	// Store selects the backend: "memory" or "redis"
	Store string `env:"SESSION_STORE" envDefault:"memory"`
}

// DefaultConfig returns default session configuration without secrets
func DefaultConfig() Config {
	return Config{
		CookieName:      "sid",
		TTL:             2 * time.Hour,
		CleanupInterval: 5 * time.Minute,
		SecureCookies:   false,
		Store:           "memory",
	}
}

// NewFromConfig creates a new Manager from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) (*Manager, error) {
	return New(cfg.Secrets, append([]Option{WithConfig(cfg)}, opts...)...)
}
