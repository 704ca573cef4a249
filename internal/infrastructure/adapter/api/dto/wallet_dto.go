package dto

// BalanceResponse represents the API response for a wallet balance inquiry
type BalanceResponse struct {
	WalletID uint64 `json:"walletId"`
	Phone    string `json:"phone"`
	Balance  string `json:"balance"`
	Status   string `json:"status"`
}
