package entity

import (
	"time"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
)

// TransactionType identifies the kind of ledger entry
type TransactionType string

// TypeTransfer is the only transaction type in this design. The stored value
// is direction-agnostic; SENT/RECEIVED is computed at query time relative to
// the viewer, never persisted.
const TypeTransfer TransactionType = "transfer"

// TransactionStatus defines possible status values for a ledger entry
type TransactionStatus string

// Status values. Every persisted entry is SUCCESS: failed transfers abort the
// unit of work before a row exists. FAILED is reserved for asynchronous
// settlement flows that are out of scope here.
const (
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailed  TransactionStatus = "FAILED"
)

// Direction is the view-time label of a ledger entry relative to a viewer
type Direction string

// Direction labels
const (
	DirectionSent     Direction = "SENT"
	DirectionReceived Direction = "RECEIVED"
)

// Transaction is an immutable ledger entry recording a completed transfer
// between two distinct wallets. Once appended it is never mutated or deleted.
type Transaction struct {
	ID            uint64
	FromWalletID  uint64
	ToWalletID    uint64
	FromUserID    uint64
	ToUserID      uint64
	FromPhone     string
	ToPhone       string
	Amount        string // two decimal places
	AmountInCents int64
	Type          TransactionType
	Status        TransactionStatus
	CreatedAt     time.Time
}

// NewTransfer constructs the ledger entry for a completed transfer. Both
// wallets must be distinct and the amount strictly positive; callers validate
// these long before money moves, so violations here indicate a programming
// error upstream.
func NewTransfer(from, to *Wallet, amountInCents int64, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if from == nil || to == nil || from.ID == to.ID {
		return nil, errs.ErrSelfTransfer
	}
	if amountInCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Transaction{
		FromWalletID:  from.ID,
		ToWalletID:    to.ID,
		FromUserID:    from.UserID,
		ToUserID:      to.UserID,
		FromPhone:     from.Phone,
		ToPhone:       to.Phone,
		Amount:        FormatCents(amountInCents),
		AmountInCents: amountInCents,
		Type:          TypeTransfer,
		Status:        StatusSuccess,
		CreatedAt:     timeProvider.Now(),
	}, nil
}

// DirectionFor computes the direction label relative to the viewing user
func (t *Transaction) DirectionFor(viewerUserID uint64) Direction {
	if t.FromUserID == viewerUserID {
		return DirectionSent
	}
	return DirectionReceived
}

// TransactionRecord is the caller-facing projection of a ledger entry with
// the direction computed for a specific viewer
type TransactionRecord struct {
	ID        uint64            `json:"id"`
	FromPhone string            `json:"fromPhone"`
	ToPhone   string            `json:"toPhone"`
	Amount    string            `json:"amount"`
	Direction Direction         `json:"direction"`
	Status    TransactionStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
}

// RecordFor projects the transaction for a viewing user
func (t *Transaction) RecordFor(viewerUserID uint64) TransactionRecord {
	return TransactionRecord{
		ID:        t.ID,
		FromPhone: t.FromPhone,
		ToPhone:   t.ToPhone,
		Amount:    t.Amount,
		Direction: t.DirectionFor(viewerUserID),
		Status:    t.Status,
		CreatedAt: t.CreatedAt,
	}
}
