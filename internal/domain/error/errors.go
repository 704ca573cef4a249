package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeSelfTransfer       = 4001
	CodeInvalidAmount      = 4002
	CodeInsufficientFunds  = 4003
	CodeWalletInactive     = 4004
	CodeDuplicatePhone     = 4005
	CodeInvalidCredentials = 4010
	CodeWalletNotFound     = 4040
	CodeUserNotFound       = 4041
	CodeTransferTimeout    = 4080

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5030
)

// Base error types
var (
	// ErrSelfTransfer is returned when the source and destination identity are the same
	ErrSelfTransfer = errors.New("cannot transfer to your own wallet")

	// ErrInvalidAmount is returned when the transfer amount is non-positive or malformed
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrNegativeAmount is returned when the amount carries a negative sign
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInsufficientFunds is returned when the sender's balance does not cover the amount
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWalletNotFound is returned when no wallet resolves for the given identity
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrWalletInactive is returned when a wallet or its owner is not ACTIVE
	ErrWalletInactive = errors.New("wallet is not active")

	// ErrTransferTimeout is returned when the unit of work could not complete in time
	ErrTransferTimeout = errors.New("transfer timed out")

	// ErrStorageUnavailable is returned when the underlying store fails mid-operation
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatePhone is returned when registering a phone number that is already taken
	ErrDuplicatePhone = errors.New("phone number already registered")

	// ErrInvalidPhone is returned when the phone number is empty or malformed
	ErrInvalidPhone = errors.New("invalid phone number")

	// ErrInvalidCredentials is returned when login credentials don't match
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when an access or refresh token fails verification
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrSelfTransfer):
		return CodeSelfTransfer
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrWalletInactive):
		return CodeWalletInactive
	case errors.Is(err, ErrDuplicatePhone):
		return CodeDuplicatePhone
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrInvalidToken):
		return CodeInvalidCredentials
	case errors.Is(err, ErrWalletNotFound):
		return CodeWalletNotFound
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTransferTimeout):
		return CodeTransferTimeout
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a rejected debit
type InsufficientFundsError struct {
	WalletID uint64
	Amount   string
	Balance  string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in wallet %d: required %s, available %s",
		e.WalletID, e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_funds",
		"wallet_id":  e.WalletID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(walletID uint64, amount, balance string) error {
	return &InsufficientFundsError{
		WalletID: walletID,
		Amount:   amount,
		Balance:  balance,
	}
}

// InactiveWalletError reports which side of a transfer was not ACTIVE
type InactiveWalletError struct {
	WalletID uint64
	Status   string
}

// Error implements the error interface
func (e *InactiveWalletError) Error() string {
	return fmt.Sprintf("wallet %d is not active (status: %s)", e.WalletID, e.Status)
}

// Is checks if the target error is an ErrWalletInactive
func (e *InactiveWalletError) Is(target error) bool {
	return target == ErrWalletInactive
}

// LogFields returns a map of fields for structured logging
func (e *InactiveWalletError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "wallet_inactive",
		"wallet_id":  e.WalletID,
		"status":     e.Status,
		"error_code": CodeWalletInactive,
	}
}

// NewInactiveWalletError creates a new detailed inactive wallet error
func NewInactiveWalletError(walletID uint64, status string) error {
	return &InactiveWalletError{WalletID: walletID, Status: status}
}

// TransferError wraps a failure of the transfer engine with its full context
type TransferError struct {
	FromPhone string
	ToPhone   string
	Amount    string
	Reason    string
	Err       error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %s from %s to %s failed: %s - %v",
		e.Amount, e.FromPhone, e.ToPhone, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transfer_error",
		"from_phone": e.FromPhone,
		"to_phone":   e.ToPhone,
		"amount":     e.Amount,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(fromPhone, toPhone, amount, reason string, err error) *TransferError {
	return &TransferError{
		FromPhone: fromPhone,
		ToPhone:   toPhone,
		Amount:    amount,
		Reason:    reason,
		Err:       err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsWalletInactiveError checks if the error is related to an inactive wallet or owner
func IsWalletInactiveError(err error) bool {
	return errors.Is(err, ErrWalletInactive)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrWalletNotFound) || errors.Is(err, ErrUserNotFound)
}

// IsValidationError reports whether the error was raised before any mutation
func IsValidationError(err error) bool {
	return errors.Is(err, ErrSelfTransfer) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInvalidPhone)
}

// IsTimeoutError checks if the error is a transfer timeout
func IsTimeoutError(err error) bool {
	return errors.Is(err, ErrTransferTimeout)
}
