package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	transferUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/transfer"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/cache"
)

// TransferHandler handles money movement HTTP requests
type TransferHandler struct {
	transferService *transferUseCase.Service
	cache           *cache.Store
	logger          coreport.Logger
}

// NewTransferHandler creates a new transfer handler instance. The cache may
// be nil when read caching is disabled.
func NewTransferHandler(
	transferService *transferUseCase.Service,
	cacheStore *cache.Store,
	logger coreport.Logger,
) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		cache:           cacheStore,
		logger:          logger,
	}
}

// Transfer handles the POST /transactions/transfer endpoint. The sender is
// always the authenticated caller.
func (h *TransferHandler) Transfer(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	txn, err := h.transferService.Transfer(c.Request.Context(), identity.Phone, req.ToPhone, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	h.invalidateParties(c, txn.FromUserID, txn.ToUserID)

	c.JSON(http.StatusOK, dto.TransferResponse{
		TransactionID: txn.ID,
		FromPhone:     txn.FromPhone,
		ToPhone:       txn.ToPhone,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Status:        string(txn.Status),
		CreatedAt:     txn.CreatedAt,
	})
}

// invalidateParties drops cached views for both sides of a transfer so the
// next read reflects the new balances
func (h *TransferHandler) invalidateParties(c *gin.Context, fromUserID, toUserID uint64) {
	if h.cache == nil {
		return
	}

	for _, userID := range []uint64{fromUserID, toUserID} {
		if err := h.cache.InvalidateUser(c.Request.Context(), userID); err != nil {
			h.logger.Warn("Failed to invalidate cached views", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
	}
}
