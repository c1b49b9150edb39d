package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements Store interface using in-memory storage
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ticker   *time.Ticker
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates a new in-memory session store. A positive
// cleanupInterval starts a goroutine removing expired sessions; stop it with Close.
func NewMemoryStore(cleanupInterval time.Duration) *MemoryStore {
	store := &MemoryStore{
		sessions: make(map[string]*Session),
		done:     make(chan struct{}),
	}

	if cleanupInterval > 0 {
		store.ticker = time.NewTicker(cleanupInterval)
		go store.cleanupLoop()
	}

	return store
}

// Save stores a copy of the session
func (m *MemoryStore) Save(_ context.Context, session *Session) error {
	if session == nil || session.Token == "" {
		return ErrInvalidSession
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.Token] = session.clone()
	return nil
}

// Get retrieves a copy of the session stored under token
func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[token]
	m.mu.RUnlock()

	if !exists {
		return nil, ErrSessionNotFound
	}

	if session.IsExpired() {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, ErrSessionExpired
	}

	return session.clone(), nil
}

// Delete removes a session by token
func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, token)
	return nil
}

// DeleteExpired removes all expired sessions
func (m *MemoryStore) DeleteExpired(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for token, session := range m.sessions {
		if now.After(session.ExpiresAt) {
			delete(m.sessions, token)
		}
	}

	return nil
}

// Len returns the number of stored sessions, expired ones included.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.sessions)
}

// Close stops the cleanup goroutine
func (m *MemoryStore) Close() error {
	m.once.Do(func() {
		if m.ticker != nil {
			m.ticker.Stop()
			close(m.done)
		}
	})
	return nil
}

// cleanupLoop runs periodic cleanup of expired sessions
func (m *MemoryStore) cleanupLoop() {
	for {
		select {
		case <-m.ticker.C:
			_ = m.DeleteExpired(context.Background())
		case <-m.done:
			return
		}
	}
}
