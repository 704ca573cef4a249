package dto

import (
	"time"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
)

// TransferRequest represents the API request for moving money to another user
type TransferRequest struct {
	ToPhone string `json:"toPhone" binding:"required"`
	Amount  string `json:"amount" binding:"required"`
}

// TransferResponse represents the API response for a completed transfer
type TransferResponse struct {
	TransactionID uint64    `json:"transactionId"`
	FromPhone     string    `json:"fromPhone"`
	ToPhone       string    `json:"toPhone"`
	Amount        string    `json:"amount"`
	Type          string    `json:"type"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HistoryResponse represents the API response for ledger queries
type HistoryResponse struct {
	Transactions []entity.TransactionRecord `json:"transactions"`
	Count        int                        `json:"count"`
}
