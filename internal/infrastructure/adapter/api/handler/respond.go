package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/sealpay/wallet-ledger/internal/domain/error"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

// httpStatus maps domain errors to HTTP status codes and client-facing messages
func httpStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domainerr.ErrSelfTransfer):
		return http.StatusBadRequest, "Cannot transfer to your own wallet"
	case domainerr.IsInsufficientFundsError(err):
		return http.StatusBadRequest, "Insufficient funds"
	case errors.Is(err, domainerr.ErrNegativeAmount):
		return http.StatusBadRequest, "Amount cannot be negative"
	case errors.Is(err, domainerr.ErrInvalidAmount):
		return http.StatusBadRequest, "Invalid amount"
	case errors.Is(err, domainerr.ErrInvalidPhone):
		return http.StatusBadRequest, "Invalid phone number"
	case errors.Is(err, domainerr.ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Invalid phone or password"
	case errors.Is(err, domainerr.ErrInvalidToken):
		return http.StatusUnauthorized, "Invalid or expired token"
	case domainerr.IsWalletInactiveError(err):
		return http.StatusForbidden, "Wallet is not active"
	case errors.Is(err, domainerr.ErrWalletNotFound):
		return http.StatusNotFound, "Wallet not found"
	case errors.Is(err, domainerr.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	case errors.Is(err, domainerr.ErrDuplicatePhone):
		return http.StatusConflict, "Phone number already registered"
	case errors.Is(err, domainerr.ErrTransferTimeout):
		return http.StatusRequestTimeout, "Transfer timed out"
	case errors.Is(err, domainerr.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "Service temporarily unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the standardized error body for a domain error
func respondError(c *gin.Context, err error) {
	status, message := httpStatus(err)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError writes the error body for a malformed request payload
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
