package session

import "context"

// Store defines the interface for session persistence
type Store interface {
	// Save creates or replaces a session under its token
	Save(ctx context.Context, session *Session) error

	// Get retrieves a session by token
	Get(ctx context.Context, token string) (*Session, error)

	// Delete removes a session by token
	Delete(ctx context.Context, token string) error

	// DeleteExpired removes all expired sessions
	DeleteExpired(ctx context.Context) error
}
