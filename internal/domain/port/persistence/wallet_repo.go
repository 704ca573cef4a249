package persistence

import (
	"context"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
)

// WalletRepository defines the durable mapping from user identity to wallet.
// Balance mutations only happen through Update, and Update is only ever
// called inside an active unit of work.
type WalletRepository interface {
	// GetByPhone resolves the wallet owned by the user with the given phone
	//
	// Possible errors:
	// - ErrWalletNotFound: if no user or wallet exists for the phone
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByPhone(ctx context.Context, phone string) (*entity.Wallet, error)

	// GetByUserID resolves a wallet by its owner's user ID
	//
	// Possible errors:
	// - ErrWalletNotFound: if the user has no wallet
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error)

	// LockByID reloads a wallet while acquiring an exclusive row lock held
	// for the remainder of the enclosing unit of work. Transfers lock both
	// wallets in ascending ID order so opposite-direction pairs cannot
	// deadlock.
	//
	// Possible errors:
	// - ErrWalletNotFound: if the wallet disappeared (owner lifetime bug)
	// - ErrTransferTimeout: if the lock could not be acquired in time
	// - ErrStorageUnavailable: if the store cannot be reached
	LockByID(ctx context.Context, id uint64) (*entity.Wallet, error)

	// Create persists a freshly registered wallet
	//
	// Possible errors:
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, wallet *entity.Wallet) error

	// Update persists a wallet's mutated balance and timestamp
	//
	// Possible errors:
	// - ErrWalletNotFound: if the wallet row no longer exists
	// - ErrStorageUnavailable: if the store cannot be reached
	Update(ctx context.Context, wallet *entity.Wallet) error
}
