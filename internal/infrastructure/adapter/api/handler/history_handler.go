package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	domainerr "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	historyUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/history"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/cache"
)

// HistoryHandler handles transaction history HTTP requests
type HistoryHandler struct {
	historyService *historyUseCase.Service
	cache          *cache.Store
	logger         coreport.Logger
}

// NewHistoryHandler creates a new history handler instance. The cache may be
// nil when read caching is disabled.
func NewHistoryHandler(
	historyService *historyUseCase.Service,
	cacheStore *cache.Store,
	logger coreport.Logger,
) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
		cache:          cacheStore,
		logger:         logger,
	}
}

// History handles the GET /transactions/history endpoint
func (h *HistoryHandler) History(c *gin.Context) {
	h.serve(c, "all", h.historyService.History)
}

// Sent handles the GET /transactions/sent endpoint
func (h *HistoryHandler) Sent(c *gin.Context) {
	h.serve(c, "sent", h.historyService.Sent)
}

// Received handles the GET /transactions/received endpoint
func (h *HistoryHandler) Received(c *gin.Context) {
	h.serve(c, "received", h.historyService.Received)
}

func (h *HistoryHandler) serve(
	c *gin.Context,
	scope string,
	query func(ctx context.Context, userID uint64) ([]entity.TransactionRecord, error),
) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	key := cache.HistoryKey(identity.UserID, scope)
	if h.cache != nil {
		var cached dto.HistoryResponse
		hit, err := h.cache.GetJSON(c.Request.Context(), key, &cached)
		if err != nil {
			h.logger.Warn("History cache read failed", map[string]any{
				"user_id": identity.UserID,
				"error":   err.Error(),
			})
		}
		if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	records, err := query(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.HistoryResponse{
		Transactions: records,
		Count:        len(records),
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(c.Request.Context(), key, response); err != nil {
			h.logger.Warn("History cache write failed", map[string]any{
				"user_id": identity.UserID,
				"error":   err.Error(),
			})
		}
	}

	c.JSON(http.StatusOK, response)
}
