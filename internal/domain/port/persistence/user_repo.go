package persistence

import (
	"context"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
)

// UserRepository defines methods to interact with account identities
type UserRepository interface {
	// GetByPhone retrieves a user by phone number
	//
	// Possible errors:
	// - ErrUserNotFound: if no user has the phone
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByPhone(ctx context.Context, phone string) (*entity.User, error)

	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: if the user doesn't exist
	// - ErrStorageUnavailable: if the store cannot be reached
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// ExistsByPhone checks whether a phone number is already registered
	ExistsByPhone(ctx context.Context, phone string) (bool, error)

	// Create persists a new user and assigns its ID
	//
	// Possible errors:
	// - ErrDuplicatePhone: if the phone is already taken
	// - ErrStorageUnavailable: if the store cannot be reached
	Create(ctx context.Context, user *entity.User) error

	// UpdateLastLogin stamps the user's last successful login time
	UpdateLastLogin(ctx context.Context, user *entity.User) error
}
