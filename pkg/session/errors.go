package session

import "errors"

var (
	// ErrInvalidSession indicates a nil session or a session without token
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSessionExpired indicates the session has expired
	ErrSessionExpired = errors.New("session.expired")

	// ErrSessionNotFound indicates no session was found
	ErrSessionNotFound = errors.New("session.not_found")

	// ErrSessionAlreadyActive indicates a session was started twice for the same request
	ErrSessionAlreadyActive = errors.New("session.already_active")

	// ErrTokenGeneration indicates token generation failed
	ErrTokenGeneration = errors.New("session.token_generation_failed")

	// ErrInvalidToken indicates the token cookie was tampered with or malformed
	ErrInvalidToken = errors.New("session.invalid_token")

	// ErrNoSecret indicates the manager was created without a signing secret
	ErrNoSecret = errors.New("session.no_secret")

	// ErrSecretTooShort indicates the signing secret is too weak
	ErrSecretTooShort = errors.New("session.secret_too_short")
)
