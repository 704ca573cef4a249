package model

import (
	"time"
)

// User represents the database model for account identities
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Phone        string    `gorm:"uniqueIndex;not null;size:20"`
	PasswordHash string    `gorm:"not null;size:100"`
	Role         string    `gorm:"not null;size:20;default:USER"`
	Status       string    `gorm:"not null;size:20"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
	LastLogin    *time.Time
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
