package entity

import (
	"strings"
	"time"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
)

// Status represents the lifecycle state shared by users and wallets
type Status string

// Status values
const (
	StatusActive  Status = "ACTIVE"
	StatusBlocked Status = "BLOCKED"
)

// Role values for users
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User represents an account identity. The phone number is the stable,
// unique identifier callers use to address each other's wallets.
type User struct {
	ID           uint64
	Phone        string
	PasswordHash string
	Role         string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
}

// NewUser creates a new active user with the given phone and password hash
func NewUser(phone, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, errs.ErrInvalidPhone
	}

	now := timeProvider.Now()
	return &User{
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Status:       StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// IsActive reports whether the user may participate in transfers
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// TouchLogin stamps the last successful login time
func (u *User) TouchLogin(timeProvider coreport.TimeProvider) {
	now := timeProvider.Now()
	u.LastLogin = &now
	u.UpdatedAt = now
}
