package history

import (
	"context"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/domain/port/persistence"
)

// Service provides read-only projections over the transaction ledger. It
// never mutates state; repeated calls with no intervening transfer return
// identical results. The SENT/RECEIVED label is computed here per viewer and
// is never stored, so the same ledger row labels differently for each party.
type Service struct {
	ledger persistence.LedgerRepository
	logger coreport.Logger
}

// NewService creates a new query service over the ledger
func NewService(ledger persistence.LedgerRepository, logger coreport.Logger) *Service {
	return &Service{ledger: ledger, logger: logger}
}

// History returns every transfer the user participated in, newest first
func (s *Service) History(ctx context.Context, userID uint64) ([]entity.TransactionRecord, error) {
	txns, err := s.ledger.ListForUser(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list transaction history", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return s.project(userID, txns), nil
}

// Sent returns transfers the user's wallet was debited for, newest first
func (s *Service) Sent(ctx context.Context, userID uint64) ([]entity.TransactionRecord, error) {
	txns, err := s.ledger.ListSent(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list sent transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return s.project(userID, txns), nil
}

// Received returns transfers credited to the user's wallet, newest first
func (s *Service) Received(ctx context.Context, userID uint64) ([]entity.TransactionRecord, error) {
	txns, err := s.ledger.ListReceived(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list received transactions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}
	return s.project(userID, txns), nil
}

func (s *Service) project(viewerUserID uint64, txns []*entity.Transaction) []entity.TransactionRecord {
	records := make([]entity.TransactionRecord, 0, len(txns))
	for _, txn := range txns {
		records = append(records, txn.RecordFor(viewerUserID))
	}
	return records
}
