package persistence

import (
	"context"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
)

// LedgerRepository is the append-only collection of completed transfers.
// Entries are never updated or deleted; all list methods return entries
// ordered by created_at descending with ties broken by id descending so
// results are deterministic.
type LedgerRepository interface {
	// Append persists a new ledger entry, assigning its ID and returning the
	// entry with storage-assigned fields populated
	//
	// Possible errors:
	// - ErrStorageUnavailable: if the store cannot be reached
	Append(ctx context.Context, txn *entity.Transaction) error

	// ListForUser returns every transfer in which the user's wallet is
	// either side, newest first
	ListForUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListSent returns transfers debited from the user's wallet, newest first
	ListSent(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// ListReceived returns transfers credited to the user's wallet, newest first
	ListReceived(ctx context.Context, userID uint64) ([]*entity.Transaction, error)
}
