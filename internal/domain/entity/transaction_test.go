package entity

import (
	"testing"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWalletPair(tp *fixedTimeProvider) (*Wallet, *Wallet) {
	from := NewWallet(1, tp)
	from.ID = 10
	from.Phone = "+15550001"
	to := NewWallet(2, tp)
	to.ID = 20
	to.Phone = "+15550002"
	return from, to
}

func TestNewTransfer(t *testing.T) {
	tp := newFixedTimeProvider()

	t.Run("Success", func(t *testing.T) {
		from, to := testWalletPair(tp)

		txn, err := NewTransfer(from, to, 1015, tp)
		require.NoError(t, err)

		assert.Equal(t, uint64(10), txn.FromWalletID)
		assert.Equal(t, uint64(20), txn.ToWalletID)
		assert.Equal(t, uint64(1), txn.FromUserID)
		assert.Equal(t, uint64(2), txn.ToUserID)
		assert.Equal(t, "+15550001", txn.FromPhone)
		assert.Equal(t, "+15550002", txn.ToPhone)
		assert.Equal(t, "10.15", txn.Amount)
		assert.Equal(t, int64(1015), txn.AmountInCents)
		assert.Equal(t, TypeTransfer, txn.Type)
		assert.Equal(t, StatusSuccess, txn.Status)
		assert.Equal(t, tp.Now(), txn.CreatedAt)
	})

	t.Run("Same wallet", func(t *testing.T) {
		from, _ := testWalletPair(tp)

		_, err := NewTransfer(from, from, 100, tp)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Nil wallet", func(t *testing.T) {
		from, _ := testWalletPair(tp)

		_, err := NewTransfer(from, nil, 100, tp)
		assert.ErrorIs(t, err, errs.ErrSelfTransfer)
	})

	t.Run("Non-positive amount", func(t *testing.T) {
		from, to := testWalletPair(tp)

		_, err := NewTransfer(from, to, 0, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = NewTransfer(from, to, -5, tp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestDirectionFor(t *testing.T) {
	tp := newFixedTimeProvider()
	from, to := testWalletPair(tp)

	txn, err := NewTransfer(from, to, 100, tp)
	require.NoError(t, err)

	assert.Equal(t, DirectionSent, txn.DirectionFor(1))
	assert.Equal(t, DirectionReceived, txn.DirectionFor(2))
}

func TestRecordFor(t *testing.T) {
	tp := newFixedTimeProvider()
	from, to := testWalletPair(tp)

	txn, err := NewTransfer(from, to, 1015, tp)
	require.NoError(t, err)
	txn.ID = 99

	senderView := txn.RecordFor(1)
	receiverView := txn.RecordFor(2)

	// Same row, opposite labels
	assert.Equal(t, DirectionSent, senderView.Direction)
	assert.Equal(t, DirectionReceived, receiverView.Direction)

	// Everything else is identical for both viewers
	assert.Equal(t, senderView.ID, receiverView.ID)
	assert.Equal(t, senderView.Amount, receiverView.Amount)
	assert.Equal(t, senderView.FromPhone, receiverView.FromPhone)
	assert.Equal(t, senderView.ToPhone, receiverView.ToPhone)
	assert.Equal(t, senderView.CreatedAt, receiverView.CreatedAt)
	assert.Equal(t, StatusSuccess, senderView.Status)
}
