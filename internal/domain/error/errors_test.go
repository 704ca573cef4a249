package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrSelfTransfer.Error() != "cannot transfer to your own wallet" {
		t.Errorf("ErrSelfTransfer has unexpected message: %s", ErrSelfTransfer.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"SelfTransfer", ErrSelfTransfer, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"NegativeAmount", ErrNegativeAmount, 4002},
		{"InsufficientFunds", ErrInsufficientFunds, 4003},
		{"WalletInactive", ErrWalletInactive, 4004},
		{"DuplicatePhone", ErrDuplicatePhone, 4005},
		{"InvalidCredentials", ErrInvalidCredentials, 4010},
		{"InvalidToken", ErrInvalidToken, 4010},
		{"WalletNotFound", ErrWalletNotFound, 4040},
		{"UserNotFound", ErrUserNotFound, 4041},
		{"TransferTimeout", ErrTransferTimeout, 4080},
		{"StorageUnavailable", ErrStorageUnavailable, 5030},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrWalletNotFound), 4040},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(7, "100.50", "50.25")

	expected := "insufficient funds in wallet 7: required 100.50, available 50.25"
	if err.Error() != expected {
		t.Errorf("Error() = %s, want %s", err.Error(), expected)
	}

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("expected errors.Is to match ErrInsufficientFunds")
	}
	if !IsInsufficientFundsError(err) {
		t.Error("expected IsInsufficientFundsError to be true")
	}
	if ErrorCode(err) != CodeInsufficientFunds {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeInsufficientFunds)
	}

	var typed *InsufficientFundsError
	if !errors.As(err, &typed) {
		t.Fatal("expected errors.As to extract InsufficientFundsError")
	}
	fields := typed.LogFields()
	if fields["wallet_id"] != uint64(7) {
		t.Errorf("LogFields wallet_id = %v, want 7", fields["wallet_id"])
	}
}

func TestInactiveWalletError(t *testing.T) {
	err := NewInactiveWalletError(3, "BLOCKED")

	if !errors.Is(err, ErrWalletInactive) {
		t.Error("expected errors.Is to match ErrWalletInactive")
	}
	if !IsWalletInactiveError(err) {
		t.Error("expected IsWalletInactiveError to be true")
	}
	if ErrorCode(err) != CodeWalletInactive {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeWalletInactive)
	}
}

func TestTransferError(t *testing.T) {
	base := ErrInsufficientFunds
	err := NewTransferError("+15550001", "+15550002", "25.00", "balance check failed", base)

	if !errors.Is(err, ErrInsufficientFunds) {
		t.Error("expected TransferError to unwrap to its cause")
	}
	if ErrorCode(err) != CodeInsufficientFunds {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(err), CodeInsufficientFunds)
	}

	var typed *TransferError
	if !errors.As(err, &typed) {
		t.Fatal("expected errors.As to extract TransferError")
	}
	fields := typed.LogFields()
	if fields["from_phone"] != "+15550001" {
		t.Errorf("LogFields from_phone = %v", fields["from_phone"])
	}
	if fields["error_code"] != CodeInsufficientFunds {
		t.Errorf("LogFields error_code = %v", fields["error_code"])
	}
}

func TestErrorClassifiers(t *testing.T) {
	if !IsNotFoundError(ErrWalletNotFound) || !IsNotFoundError(ErrUserNotFound) {
		t.Error("expected not-found errors to classify as such")
	}
	if IsNotFoundError(ErrInvalidAmount) {
		t.Error("ErrInvalidAmount must not classify as not-found")
	}

	for _, err := range []error{ErrSelfTransfer, ErrInvalidAmount, ErrNegativeAmount, ErrInvalidPhone} {
		if !IsValidationError(err) {
			t.Errorf("expected %v to classify as validation error", err)
		}
	}
	if IsValidationError(ErrStorageUnavailable) {
		t.Error("ErrStorageUnavailable must not classify as validation error")
	}

	if !IsTimeoutError(fmt.Errorf("op: %w", ErrTransferTimeout)) {
		t.Error("expected wrapped timeout to classify as timeout")
	}
}
