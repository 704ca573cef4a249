package model

import (
	"time"
)

// Transaction represents the database model for ledger entries. Rows are
// append-only; nothing in the application updates or deletes them.
type Transaction struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement"`
	FromWalletID  uint64    `gorm:"not null;index"`
	ToWalletID    uint64    `gorm:"not null;index"`
	Amount        string    `gorm:"not null;size:50"`
	AmountInCents int64     `gorm:"not null"`
	Type          string    `gorm:"not null;size:20"`
	Status        string    `gorm:"not null;size:20"`
	CreatedAt     time.Time `gorm:"not null;index"`

	FromWallet Wallet `gorm:"foreignKey:FromWalletID;references:ID"`
	ToWallet   Wallet `gorm:"foreignKey:ToWalletID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
