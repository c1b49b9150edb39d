package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/catalyst/pkg/logger"
	"github.com/dmitrymomot/catalyst/pkg/validator"
)

// Messages reported on the form fields.
const (
	MsgEmailTaken         = "Email is already taken"
	MsgInvalidCredentials = "Invalid Email or Password"
)

// User is an account row.
type User struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	CreatedAt    time.Time `db:"created_at"`
}

// UserStore persists accounts.
type UserStore interface {
	CountByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error)
	FindByEmail(ctx context.Context, email string) (User, error)
}

// UserSettings tunes password hashing.
type UserSettings struct {
	BcryptCost int
}

// UserService registers and authenticates users.
type UserService struct {
	store UserStore
	cost  int
	log   *slog.Logger

	// dummyHash is compared against for unknown emails. It shares the cost of
	// real hashes so both paths take the same time.
	dummyHash []byte
}

// NewUserService creates the service. It fails when the bcrypt cost is out of range.
func NewUserService(store UserStore, settings *UserSettings, log *slog.Logger) (*UserService, error) {
	cost := bcrypt.DefaultCost
	if settings != nil && settings.BcryptCost != 0 {
		cost = settings.BcryptCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte("catalyst"), cost)
	if err != nil {
		return nil, fmt.Errorf("bcrypt cost %d: %w", cost, err)
	}

	return &UserService{
		store:     store,
		cost:      cost,
		log:       log.With(logger.Component("users")),
		dummyHash: dummyHash,
	}, nil
}

// EmailExists fails with a validation error on the email field when the
// address is already registered.
func (s *UserService) EmailExists(ctx context.Context, email string) error {
	n, err := s.store.CountByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return err
	}
	if n > 0 {
		return emailTaken()
	}
	return nil
}

// Register creates an account and returns its id.
func (s *UserService) Register(ctx context.Context, email, password string) (uuid.UUID, error) {
	if err := s.EmailExists(ctx, email); err != nil {
		return uuid.Nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := s.store.Create(ctx, normalizeEmail(email), string(hash))
	if errors.Is(err, ErrEmailTaken) {
		return uuid.Nil, emailTaken()
	}
	if err != nil {
		return uuid.Nil, err
	}

	s.log.InfoContext(ctx, "user registered", logger.UserID(id))
	return id, nil
}

// Authenticate checks the credentials. Unknown emails and wrong passwords
// yield the same validation error on the password field.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.store.FindByEmail(ctx, normalizeEmail(email))
	switch {
	case errors.Is(err, ErrUserNotFound):
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return User{}, invalidCredentials()
	case err != nil:
		return User{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.WarnContext(ctx, "failed login", logger.UserID(user.ID))
		return User{}, invalidCredentials()
	}
	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func emailTaken() error {
	errs := validator.NewValidationError()
	errs.Add("email", MsgEmailTaken)
	return errs
}

func invalidCredentials() error {
	errs := validator.NewValidationError()
	errs.Add("password", MsgInvalidCredentials)
	return errs
}
