package transfer

import (
	"context"
	"errors"
	"time"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/domain/port/persistence"
)

// Service is the transfer engine. It orchestrates a single transfer as one
// indivisible unit of work: validation, atomic debit/credit on both wallets
// and the ledger append. It performs no retries; a failed attempt surfaces a
// typed error and leaves no trace in storage.
type Service struct {
	uow          persistence.UnitOfWork
	validator    *Validator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	timeout      time.Duration
}

// NewService creates a new transfer engine
func NewService(
	uow persistence.UnitOfWork,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	timeout time.Duration,
) *Service {
	return &Service{
		uow:          uow,
		validator:    NewValidator(),
		timeProvider: timeProvider,
		logger:       logger,
		timeout:      timeout,
	}
}

// Transfer moves amount from the wallet owned by fromPhone to the wallet
// owned by toPhone and returns the persisted ledger entry.
//
// Validation order (first violation wins):
//  1. fromPhone != toPhone        -> ErrSelfTransfer
//  2. amount positive, <= 2dp     -> ErrInvalidAmount
//  3. both wallets resolve        -> ErrWalletNotFound
//  4. wallets and owners ACTIVE   -> ErrWalletInactive
//  5. sender balance >= amount    -> ErrInsufficientFunds
func (s *Service) Transfer(ctx context.Context, fromPhone, toPhone, amount string) (*entity.Transaction, error) {
	amountInCents, err := s.validator.ValidateRequest(fromPhone, toPhone, amount)
	if err != nil {
		s.logger.Warn("Transfer rejected by validation", map[string]any{
			"from_phone": fromPhone,
			"to_phone":   toPhone,
			"amount":     amount,
			"error":      err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Starting transfer", map[string]any{
		"from_phone": fromPhone,
		"to_phone":   toPhone,
		"amount":     entity.FormatCents(amountInCents),
	})

	ctx, cancel := s.timeProvider.WithTimeout(ctx, s.timeout)
	defer cancel()

	var txn *entity.Transaction
	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		wallets := s.uow.WalletRepository(txCtx)

		fromWallet, err := wallets.GetByPhone(txCtx, fromPhone)
		if err != nil {
			return err
		}
		toWallet, err := wallets.GetByPhone(txCtx, toPhone)
		if err != nil {
			return err
		}

		if err := checkActive(fromWallet, toWallet); err != nil {
			return err
		}
		if !fromWallet.CanDebit(amountInCents) {
			return errs.NewInsufficientFundsError(fromWallet.ID, entity.FormatCents(amountInCents), fromWallet.FormattedBalance())
		}

		// Lock both rows in ascending wallet-id order. Two transfers moving
		// money in opposite directions between the same pair then acquire
		// locks in the same order and cannot deadlock.
		fromWallet, toWallet, err = s.lockBoth(txCtx, wallets, fromWallet.ID, toWallet.ID)
		if err != nil {
			return err
		}

		// Re-validate on the locked rows: status or balance may have changed
		// while we waited for the locks.
		if err := checkActive(fromWallet, toWallet); err != nil {
			return err
		}

		if err := fromWallet.Debit(amountInCents, s.timeProvider); err != nil {
			return err
		}
		if err := toWallet.Credit(amountInCents, s.timeProvider); err != nil {
			return err
		}

		if err := wallets.Update(txCtx, fromWallet); err != nil {
			return err
		}
		if err := wallets.Update(txCtx, toWallet); err != nil {
			return err
		}

		entry, err := entity.NewTransfer(fromWallet, toWallet, amountInCents, s.timeProvider)
		if err != nil {
			return err
		}
		if err := s.uow.LedgerRepository(txCtx).Append(txCtx, entry); err != nil {
			return err
		}

		txn = entry
		return nil
	})

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			err = errs.ErrTransferTimeout
		}
		failure := errs.NewTransferError(fromPhone, toPhone, amount, "rolled back", err)
		s.logger.Error("Transfer failed", failure.LogFields())
		return nil, failure
	}

	s.logger.Info("Transfer completed", map[string]any{
		"transaction_id": txn.ID,
		"from_phone":     fromPhone,
		"to_phone":       toPhone,
		"amount":         txn.Amount,
	})
	return txn, nil
}

// lockBoth acquires row locks on both wallets in ascending ID order and
// returns the reloaded rows mapped back to (from, to).
func (s *Service) lockBoth(
	ctx context.Context,
	wallets persistence.WalletRepository,
	fromID, toID uint64,
) (*entity.Wallet, *entity.Wallet, error) {
	firstID, secondID := fromID, toID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	first, err := wallets.LockByID(ctx, firstID)
	if err != nil {
		return nil, nil, err
	}
	second, err := wallets.LockByID(ctx, secondID)
	if err != nil {
		return nil, nil, err
	}

	if first.ID == fromID {
		return first, second, nil
	}
	return second, first, nil
}

// checkActive rejects the transfer when either wallet, or either owning
// identity, is not ACTIVE
func checkActive(from, to *entity.Wallet) error {
	if !from.IsActive() {
		return errs.NewInactiveWalletError(from.ID, effectiveStatus(from))
	}
	if !to.IsActive() {
		return errs.NewInactiveWalletError(to.ID, effectiveStatus(to))
	}
	return nil
}

// effectiveStatus reports which side of the wallet/owner pair is blocked
func effectiveStatus(w *entity.Wallet) string {
	if w.Status != entity.StatusActive {
		return string(w.Status)
	}
	return string(w.OwnerStatus)
}
