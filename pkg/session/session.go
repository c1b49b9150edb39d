package session

import (
	"encoding/json"
	"fmt"
	"maps"
	"time"

	"github.com/google/uuid"
)

// Session is the server side state of a visitor.
type Session struct {
	ID             uuid.UUID      `json:"id"`
	Token          string         `json:"token"`
	UserID         *uuid.UUID     `json:"user_id,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
	ExpiresAt      time.Time      `json:"expires_at"`
	LastActivityAt time.Time      `json:"last_activity_at"`
	CreatedAt      time.Time      `json:"created_at"`
}

// NewSession creates an anonymous session living for ttl. The token is assigned by
// the Manager.
func NewSession(ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:             uuid.New(),
		Data:           make(map[string]any),
		ExpiresAt:      now.Add(ttl),
		LastActivityAt: now,
		CreatedAt:      now,
	}
}

// IsAuthenticated returns true if the session has a user ID
func (s *Session) IsAuthenticated() bool {
	return s != nil && s.UserID != nil
}

// IsExpired returns true if the session has expired
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// SetUser marks the session as belonging to a user.
func (s *Session) SetUser(id uuid.UUID) {
	if s == nil {
		return
	}
	s.UserID = &id
}

// Get retrieves a value from session data
func (s *Session) Get(key string) (any, bool) {
	if s == nil || s.Data == nil {
		return nil, false
	}
	val, ok := s.Data[key]
	return val, ok
}

// GetString retrieves a string value from session data
func (s *Session) GetString(key string) (string, bool) {
	val, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := val.(string)
	return str, ok
}

// Set stores a value in session data
func (s *Session) Set(key string, value any) {
	if s == nil {
		return
	}
	if s.Data == nil {
		s.Data = make(map[string]any)
	}
	s.Data[key] = value
}

// Delete removes a value from session data
func (s *Session) Delete(key string) {
	if s == nil || s.Data == nil {
		return
	}
	delete(s.Data, key)
}

// Clear removes all data from the session
func (s *Session) Clear() {
	if s == nil {
		return
	}
	s.Data = make(map[string]any)
}

// Pull returns a value and removes it, which makes it a one-time flash.
func (s *Session) Pull(key string) (any, bool) {
	val, ok := s.Get(key)
	if ok {
		s.Delete(key)
	}
	return val, ok
}

// Decode copies the value stored under key into dest. Values go through JSON,
// so dest gets the same shape whether the session was kept in memory or
// loaded back from a remote store.
func (s *Session) Decode(key string, dest any) (bool, error) {
	val, ok := s.Get(key)
	if !ok {
		return false, nil
	}

	raw, err := json.Marshal(val)
	if err != nil {
		return true, fmt.Errorf("encode session value %q: %w", key, err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return true, fmt.Errorf("decode session value %q: %w", key, err)
	}
	return true, nil
}

// PullInto is Decode followed by Delete.
func (s *Session) PullInto(key string, dest any) (bool, error) {
	ok, err := s.Decode(key, dest)
	if ok {
		s.Delete(key)
	}
	return ok, err
}

// Touch updates the last activity time
func (s *Session) Touch() {
	if s == nil {
		return
	}
	s.LastActivityAt = time.Now()
}

// clone returns a copy that shares no data map with s.
func (s *Session) clone() *Session {
	c := *s
	if s.Data != nil {
		c.Data = make(map[string]any, len(s.Data))
		maps.Copy(c.Data, s.Data)
	}
	if s.UserID != nil {
		id := *s.UserID
		c.UserID = &id
	}
	return &c
}
