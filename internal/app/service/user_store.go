package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/catalyst/pkg/database"
)

// PostgresUserStore keeps accounts in the users table.
type PostgresUserStore struct {
	db *database.DB
}

func NewPostgresUserStore(db *database.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.db.Query(ctx, "SELECT COUNT(*) FROM users WHERE email = $1", email).Count()
}

func (s *PostgresUserStore) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID
	err := s.db.Query(ctx,
		"INSERT INTO users (email, password) VALUES ($1, $2) RETURNING id",
		email, passwordHash,
	).Scan(&id)
	if database.IsDuplicateKeyError(err) {
		return uuid.Nil, ErrEmailTaken
	}
	return id, err
}

func (s *PostgresUserStore) FindByEmail(ctx context.Context, email string) (User, error) {
	user, err := database.One[User](s.db.Query(ctx,
		"SELECT id, email, password, created_at FROM users WHERE email = $1",
		email,
	))
	if database.IsNotFoundError(err) {
		return User{}, ErrUserNotFound
	}
	return user, err
}

// MemoryUserStore keeps accounts in process. It backs local runs without a
// database and tests.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]User)}
}

func (s *MemoryUserStore) CountByEmail(_ context.Context, email string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.users[email]; ok {
		return 1, nil
	}
	return 0, nil
}

func (s *MemoryUserStore) Create(_ context.Context, email, passwordHash string) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return uuid.Nil, ErrEmailTaken
	}

	u := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users[email] = u
	return u.ID, nil
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}
