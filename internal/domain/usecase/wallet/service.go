package wallet

import (
	"context"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/domain/port/persistence"
)

// BalanceResponse is the caller-facing view of a wallet's state
type BalanceResponse struct {
	WalletID uint64        `json:"walletId"`
	Phone    string        `json:"phone"`
	Balance  string        `json:"balance"`
	Status   entity.Status `json:"status"`
}

// Service answers balance inquiries
type Service struct {
	wallets persistence.WalletRepository
	logger  coreport.Logger
}

// NewService creates a new wallet query service
func NewService(wallets persistence.WalletRepository, logger coreport.Logger) *Service {
	return &Service{wallets: wallets, logger: logger}
}

// Balance returns the wallet state for the given user
func (s *Service) Balance(ctx context.Context, userID uint64) (*BalanceResponse, error) {
	w, err := s.wallets.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get wallet balance", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &BalanceResponse{
		WalletID: w.ID,
		Phone:    w.Phone,
		Balance:  w.FormattedBalance(),
		Status:   w.Status,
	}, nil
}
