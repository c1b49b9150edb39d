package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/catalyst/internal/app/service"
	"github.com/dmitrymomot/catalyst/pkg/logger"
	"github.com/dmitrymomot/catalyst/pkg/validator"
)

func newUserService(t *testing.T) (*service.UserService, *service.MemoryUserStore) {
	t.Helper()

	store := service.NewMemoryUserStore()
	svc, err := service.NewUserService(store, &service.UserSettings{BcryptCost: bcrypt.MinCost}, logger.Discard())
	require.NoError(t, err)
	return svc, store
}

func fieldErrors(t *testing.T, err error) validator.ValidationError {
	t.Helper()

	verr, ok := validator.AsValidationError(err)
	require.True(t, ok, "want a validation error, got %v", err)
	return verr
}

func TestNewUserService_RejectsCostOutOfRange(t *testing.T) {
	t.Parallel()

	_, err := service.NewUserService(service.NewMemoryUserStore(), &service.UserSettings{BcryptCost: bcrypt.MaxCost + 1}, logger.Discard())
	assert.Error(t, err)
}

func TestUserService_Register(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, store := newUserService(t)

	id, err := svc.Register(ctx, " Jane@Example.com ", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	user, err := store.FindByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.NotEqual(t, "secret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret")))

	_, err = svc.Register(ctx, "jane@example.com", "other")
	assert.Equal(t, []string{service.MsgEmailTaken}, fieldErrors(t, err).Messages("email"))
}

func TestUserService_EmailExists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newUserService(t)

	require.NoError(t, svc.EmailExists(ctx, "jane@example.com"))

	_, err := svc.Register(ctx, "jane@example.com", "secret")
	require.NoError(t, err)

	err = svc.EmailExists(ctx, "JANE@example.com")
	assert.True(t, fieldErrors(t, err).Has("email"))
}

func TestUserService_Authenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc, _ := newUserService(t)

	id, err := svc.Register(ctx, "jane@example.com", "secret")
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()

		user, err := svc.Authenticate(ctx, "jane@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Authenticate(ctx, "jane@example.com", "wrong")
		assert.Equal(t, []string{service.MsgInvalidCredentials}, fieldErrors(t, err).Messages("password"))
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Authenticate(ctx, "john@example.com", "secret")
		assert.Equal(t, []string{service.MsgInvalidCredentials}, fieldErrors(t, err).Messages("password"))
	})
}

func TestMemoryUserStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := service.NewMemoryUserStore()

	n, err := store.CountByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = store.Create(ctx, "jane@example.com", "hash")
	require.NoError(t, err)

	n, err = store.CountByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = store.Create(ctx, "jane@example.com", "hash")
	assert.ErrorIs(t, err, service.ErrEmailTaken)

	_, err = store.FindByEmail(ctx, "john@example.com")
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
