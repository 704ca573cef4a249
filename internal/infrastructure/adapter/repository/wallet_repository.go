package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WalletRepository implements persistence.WalletRepository using GORM
type WalletRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewWalletRepository creates a new WalletRepository instance
func NewWalletRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *WalletRepository {
	return &WalletRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a wallet model with its preloaded owner to an entity
func modelToWallet(walletModel *model.Wallet) *entity.Wallet {
	w := &entity.Wallet{
		ID:          walletModel.ID,
		UserID:      walletModel.UserID,
		Status:      entity.Status(walletModel.Status),
		UpdatedAt:   walletModel.UpdatedAt,
		Phone:       walletModel.User.Phone,
		OwnerStatus: entity.Status(walletModel.User.Status),
	}
	w.SetBalance(walletModel.Balance)
	return w
}

// handleDatabaseError standardizes database error handling for wallet lookups
func (r *WalletRepository) handleDatabaseError(operation string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrWalletNotFound
	}
	if errors.Is(err, context.DeadlineExceeded) || r.errorClassifier.IsLockError(err) {
		r.logger.Warn("Wallet lock contention", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return errs.ErrTransferTimeout
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
}

// GetByPhone resolves the wallet owned by the user with the given phone
func (r *WalletRepository) GetByPhone(ctx context.Context, phone string) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Joins("JOIN users ON users.id = wallets.user_id").
		Where("users.phone = ?", phone).
		Preload("User").
		First(&walletModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet by phone", result.Error)
	}

	return modelToWallet(&walletModel), nil
}

// GetByUserID resolves a wallet by its owner's user ID
func (r *WalletRepository) GetByUserID(ctx context.Context, userID uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("User").
		First(&walletModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting wallet by user", result.Error)
	}

	return modelToWallet(&walletModel), nil
}

// LockByID reloads a wallet under an exclusive row lock (SELECT ... FOR
// UPDATE). The lock is held until the enclosing transaction commits or
// rolls back.
func (r *WalletRepository) LockByID(ctx context.Context, id uint64) (*entity.Wallet, error) {
	var walletModel model.Wallet
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&walletModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("locking wallet", result.Error)
	}

	// The owner row is read without a lock; user status changes are rare and
	// the transfer re-validates it on the locked balance anyway.
	var userModel model.User
	if err := r.db.WithContext(ctx).First(&userModel, walletModel.UserID).Error; err != nil {
		return nil, r.handleDatabaseError("loading wallet owner", err)
	}
	walletModel.User = userModel

	return modelToWallet(&walletModel), nil
}

// Create persists a freshly registered wallet and assigns its ID
func (r *WalletRepository) Create(ctx context.Context, wallet *entity.Wallet) error {
	walletModel := model.Wallet{
		UserID:    wallet.UserID,
		Balance:   wallet.Balance(),
		Status:    string(wallet.Status),
		UpdatedAt: wallet.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&walletModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating wallet", result.Error)
	}

	wallet.ID = walletModel.ID
	r.logger.Info("Wallet created", map[string]any{
		"wallet_id": wallet.ID,
		"user_id":   wallet.UserID,
	})
	return nil
}

// Update persists a wallet's mutated balance and timestamp
func (r *WalletRepository) Update(ctx context.Context, wallet *entity.Wallet) error {
	result := r.db.WithContext(ctx).Model(&model.Wallet{}).
		Where("id = ?", wallet.ID).
		Updates(map[string]any{
			"balance":    wallet.Balance(),
			"status":     string(wallet.Status),
			"updated_at": wallet.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating wallet", result.Error)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Wallet not found during update", map[string]any{
			"wallet_id": wallet.ID,
		})
		return errs.ErrWalletNotFound
	}

	return nil
}
