package database

import (
	"context"
	"fmt"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/domain/port/persistence"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/repository"
	"gorm.io/gorm"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const txKey contextKey = "tx"

// UnitOfWork implements the unit of work pattern on top of a database
// transaction. The transaction handle travels in the context, so repositories
// obtained through the getters inside Execute are bound to it.
type UnitOfWork struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) persistence.UnitOfWork {
	return &UnitOfWork{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// Execute runs fn inside a database transaction, committing on nil and
// rolling back on error or panic. No partial effect survives a failure.
func (u *UnitOfWork) Execute(ctx context.Context, fn func(txCtx context.Context) error) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, tx.Error.Error())
	}

	txCtx := context.WithValue(ctx, txKey, tx)

	defer func() {
		if r := recover(); r != nil {
			u.rollback(tx)
			panic(r)
		}
	}()

	if err := fn(txCtx); err != nil {
		u.rollback(tx)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: %s", errs.ErrStorageUnavailable, err.Error())
	}
	return nil
}

func (u *UnitOfWork) rollback(tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil {
		u.logger.Warn("Failed to rollback transaction", map[string]any{"error": err.Error()})
	}
}

// WalletRepository returns a wallet repository bound to the transaction in ctx
func (u *UnitOfWork) WalletRepository(ctx context.Context) persistence.WalletRepository {
	return repository.NewWalletRepository(u.dbFromContext(ctx), u.timeProvider, u.logger)
}

// LedgerRepository returns a ledger repository bound to the transaction in ctx
func (u *UnitOfWork) LedgerRepository(ctx context.Context) persistence.LedgerRepository {
	return repository.NewLedgerRepository(u.dbFromContext(ctx), u.logger)
}

// UserRepository returns a user repository bound to the transaction in ctx
func (u *UnitOfWork) UserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.dbFromContext(ctx), u.logger)
}

// dbFromContext retrieves the transaction from context, falling back to the
// root connection outside of Execute
func (u *UnitOfWork) dbFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok && tx != nil {
		return tx
	}
	return u.db.WithContext(ctx)
}
