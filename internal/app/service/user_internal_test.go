package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/catalyst/pkg/logger"
)

func TestNewUserService_DummyHashMatchesCost(t *testing.T) {
	t.Parallel()

	for _, cost := range []int{bcrypt.MinCost, bcrypt.MinCost + 1} {
		svc, err := NewUserService(NewMemoryUserStore(), &UserSettings{BcryptCost: cost}, logger.Discard())
		require.NoError(t, err)

		got, err := bcrypt.Cost(svc.dummyHash)
		require.NoError(t, err)
		assert.Equal(t, cost, got)
		assert.Equal(t, svc.cost, got)
	}
}
