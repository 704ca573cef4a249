package repository

import (
	"context"
	"fmt"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// ledgerOrder is the deterministic ordering guarantee for all list methods:
// newest first, ties broken by id so pagination and tests are stable.
const ledgerOrder = "transactions.created_at DESC, transactions.id DESC"

// LedgerRepository implements persistence.LedgerRepository using GORM
type LedgerRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{db: db, logger: logger}
}

// entityToModel converts a ledger entry entity to a database model
func (r *LedgerRepository) entityToModel(txn *entity.Transaction) model.Transaction {
	return model.Transaction{
		FromWalletID:  txn.FromWalletID,
		ToWalletID:    txn.ToWalletID,
		Amount:        txn.Amount,
		AmountInCents: txn.AmountInCents,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt,
	}
}

// modelToEntity converts a transaction model with preloaded wallets to an entity
func (r *LedgerRepository) modelToEntity(txnModel *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:            txnModel.ID,
		FromWalletID:  txnModel.FromWalletID,
		ToWalletID:    txnModel.ToWalletID,
		FromUserID:    txnModel.FromWallet.UserID,
		ToUserID:      txnModel.ToWallet.UserID,
		FromPhone:     txnModel.FromWallet.User.Phone,
		ToPhone:       txnModel.ToWallet.User.Phone,
		Amount:        txnModel.Amount,
		AmountInCents: txnModel.AmountInCents,
		Type:          entity.TransactionType(txnModel.Type),
		Status:        entity.TransactionStatus(txnModel.Status),
		CreatedAt:     txnModel.CreatedAt,
	}
}

// Append persists a new ledger entry and assigns its ID
func (r *LedgerRepository) Append(ctx context.Context, txn *entity.Transaction) error {
	txnModel := r.entityToModel(txn)

	result := r.db.WithContext(ctx).Create(&txnModel)
	if result.Error != nil {
		r.logger.Error("Failed to append ledger entry", map[string]any{
			"from_wallet_id": txn.FromWalletID,
			"to_wallet_id":   txn.ToWalletID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, result.Error.Error())
	}

	txn.ID = txnModel.ID
	r.logger.Debug("Ledger entry appended", map[string]any{
		"transaction_id": txn.ID,
		"amount":         txn.Amount,
	})
	return nil
}

// ListForUser returns every transfer where the user owns either wallet
func (r *LedgerRepository) ListForUser(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return r.list(ctx, userID, "sender.user_id = ? OR receiver.user_id = ?", userID, userID)
}

// ListSent returns transfers debited from the user's wallet
func (r *LedgerRepository) ListSent(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return r.list(ctx, userID, "sender.user_id = ?", userID)
}

// ListReceived returns transfers credited to the user's wallet
func (r *LedgerRepository) ListReceived(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	return r.list(ctx, userID, "receiver.user_id = ?", userID)
}

func (r *LedgerRepository) list(ctx context.Context, userID uint64, where string, args ...any) ([]*entity.Transaction, error) {
	var txnModels []model.Transaction
	result := r.db.WithContext(ctx).
		Joins("JOIN wallets sender ON sender.id = transactions.from_wallet_id").
		Joins("JOIN wallets receiver ON receiver.id = transactions.to_wallet_id").
		Where(where, args...).
		Order(ledgerOrder).
		Preload("FromWallet.User").
		Preload("ToWallet.User").
		Find(&txnModels)

	if result.Error != nil {
		r.logger.Error("Failed to list ledger entries", map[string]any{
			"user_id": userID,
			"error":   result.Error.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, result.Error.Error())
	}

	txns := make([]*entity.Transaction, 0, len(txnModels))
	for i := range txnModels {
		txns = append(txns, r.modelToEntity(&txnModels[i]))
	}
	return txns, nil
}
