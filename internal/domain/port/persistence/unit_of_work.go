package persistence

import (
	"context"
)

// UnitOfWork coordinates reads and writes across repositories so that a set
// of mutations commits or rolls back together. The transfer engine runs its
// whole debit-credit-append sequence inside a single Execute call: either
// both balances and the ledger entry are committed, or none are.
type UnitOfWork interface {
	// Execute runs fn inside a storage transaction. It commits when fn
	// returns nil and rolls back when fn returns an error or panics. The
	// context passed to fn carries the transaction; repositories obtained
	// through it are bound to that transaction.
	Execute(ctx context.Context, fn func(txCtx context.Context) error) error

	// WalletRepository returns a wallet repository bound to the transaction
	// carried by ctx, or an unbound one outside of Execute
	WalletRepository(ctx context.Context) WalletRepository

	// LedgerRepository returns a ledger repository bound to the transaction
	// carried by ctx, or an unbound one outside of Execute
	LedgerRepository(ctx context.Context) LedgerRepository

	// UserRepository returns a user repository bound to the transaction
	// carried by ctx, or an unbound one outside of Execute
	UserRepository(ctx context.Context) UserRepository
}
