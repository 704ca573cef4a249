package entity

import (
	"time"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
)

// Wallet is the per-user balance-holding record. Exactly one wallet exists
// per user; it is created together with its owner and never outlives it.
type Wallet struct {
	ID          uint64
	UserID      uint64
	balance     int64 // cents, never negative at a committed state (private)
	Status      Status
	UpdatedAt   time.Time
	Phone       string // owner's phone, populated by the store
	OwnerStatus Status // owner's status, populated by the store
}

// NewWallet creates an active wallet with a zero balance for the given owner
func NewWallet(userID uint64, timeProvider coreport.TimeProvider) *Wallet {
	return &Wallet{
		UserID:      userID,
		balance:     0,
		Status:      StatusActive,
		OwnerStatus: StatusActive,
		UpdatedAt:   timeProvider.Now(),
	}
}

// Balance returns the current balance in cents
func (w *Wallet) Balance() int64 {
	return w.balance
}

// FormattedBalance returns the balance as a string with two decimal places
func (w *Wallet) FormattedBalance() string {
	return FormatCents(w.balance)
}

// SetBalance updates the balance directly. Reserved for stores rehydrating
// a wallet from its persisted row.
func (w *Wallet) SetBalance(balanceInCents int64) {
	w.balance = balanceInCents
}

// IsActive reports whether both the wallet and its owner are ACTIVE
func (w *Wallet) IsActive() bool {
	return w.Status == StatusActive && w.OwnerStatus == StatusActive
}

// CanDebit checks if the wallet holds enough balance for a deduction
func (w *Wallet) CanDebit(amountInCents int64) bool {
	return w.balance >= amountInCents
}

// Debit subtracts the amount if the balance covers it
func (w *Wallet) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrInvalidAmount
	}
	if w.balance < amountInCents {
		return errs.NewInsufficientFundsError(w.ID, FormatCents(amountInCents), w.FormattedBalance())
	}

	w.balance -= amountInCents
	w.UpdatedAt = timeProvider.Now()
	return nil
}

// Credit adds the amount to the balance
func (w *Wallet) Credit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrInvalidAmount
	}

	w.balance += amountInCents
	w.UpdatedAt = timeProvider.Now()
	return nil
}
