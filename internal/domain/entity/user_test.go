package entity

import (
	"testing"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tp := newFixedTimeProvider()

	t.Run("Success", func(t *testing.T) {
		u, err := NewUser("+15550001", "hash", tp)
		require.NoError(t, err)

		assert.Equal(t, "+15550001", u.Phone)
		assert.Equal(t, "hash", u.PasswordHash)
		assert.Equal(t, RoleUser, u.Role)
		assert.Equal(t, StatusActive, u.Status)
		assert.True(t, u.IsActive())
		assert.Nil(t, u.LastLogin)
	})

	t.Run("Trims phone", func(t *testing.T) {
		u, err := NewUser("  +15550001  ", "hash", tp)
		require.NoError(t, err)
		assert.Equal(t, "+15550001", u.Phone)
	})

	t.Run("Empty phone", func(t *testing.T) {
		_, err := NewUser("   ", "hash", tp)
		assert.ErrorIs(t, err, errs.ErrInvalidPhone)
	})
}

func TestTouchLogin(t *testing.T) {
	tp := newFixedTimeProvider()
	u, err := NewUser("+15550001", "hash", tp)
	require.NoError(t, err)

	u.TouchLogin(tp)

	require.NotNil(t, u.LastLogin)
	assert.Equal(t, tp.Now(), *u.LastLogin)
	assert.Equal(t, tp.Now(), u.UpdatedAt)
}

func TestUserIsActive(t *testing.T) {
	tp := newFixedTimeProvider()
	u, err := NewUser("+15550001", "hash", tp)
	require.NoError(t, err)

	u.Status = StatusBlocked
	assert.False(t, u.IsActive())
}
