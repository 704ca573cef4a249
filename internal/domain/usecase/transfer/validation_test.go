package transfer

import (
	"testing"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestValidateRequest(t *testing.T) {
	v := NewValidator()

	t.Run("Valid request", func(t *testing.T) {
		cents, err := v.ValidateRequest("+15550001", "+15550002", "25.75")
		assert.NoError(t, err)
		assert.Equal(t, int64(2575), cents)
	})

	t.Run("Self transfer", func(t *testing.T) {
		_, err := v.ValidateRequest("+15550001", "+15550001", "10.00")
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Self transfer beats invalid amount", func(t *testing.T) {
		// The self check runs before the amount is even parsed
		_, err := v.ValidateRequest("+15550001", "+15550001", "garbage")
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Zero amount", func(t *testing.T) {
		_, err := v.ValidateRequest("+15550001", "+15550002", "0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount", func(t *testing.T) {
		_, err := v.ValidateRequest("+15550001", "+15550002", "-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Too many decimal places", func(t *testing.T) {
		_, err := v.ValidateRequest("+15550001", "+15550002", "5.001")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Malformed amount", func(t *testing.T) {
		_, err := v.ValidateRequest("+15550001", "+15550002", "ten dollars")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
