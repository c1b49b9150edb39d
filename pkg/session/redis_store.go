package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore implements Store on top of go-redis. Sessions are stored as JSON
// and expire through the key TTL.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a store writing keys as prefix + token.
// An empty prefix defaults to "session:".
func NewRedisStore(client redis.UniversalClient, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Save writes the session with a TTL matching its expiry.
func (s *RedisStore) Save(ctx context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return s.Delete(ctx, session.Token)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := s.client.Set(ctx, s.key(session.Token), data, ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Get loads the session stored under token.
func (s *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}

	// A payload that no longer decodes is dropped so the visitor gets a fresh
	// session instead of failing on every request.
	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		_ = s.Delete(ctx, token)
		return nil, fmt.Errorf("%w: %w", ErrSessionNotFound, err)
	}

	if session.IsExpired() {
		_ = s.Delete(ctx, token)
		return nil, ErrSessionExpired
	}
	return &session, nil
}

// Delete removes a session by token
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteExpired is a no-op: redis drops expired keys on its own.
func (s *RedisStore) DeleteExpired(context.Context) error {
	return nil
}

func (s *RedisStore) key(token string) string {
	return s.prefix + token
}
