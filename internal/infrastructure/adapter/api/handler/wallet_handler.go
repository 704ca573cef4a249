package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	walletUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/wallet"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/middleware"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/cache"
)

// WalletHandler handles balance inquiry HTTP requests
type WalletHandler struct {
	walletService *walletUseCase.Service
	cache         *cache.Store
	logger        coreport.Logger
}

// NewWalletHandler creates a new wallet handler instance. The cache may be
// nil when read caching is disabled.
func NewWalletHandler(
	walletService *walletUseCase.Service,
	cacheStore *cache.Store,
	logger coreport.Logger,
) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		cache:         cacheStore,
		logger:        logger,
	}
}

// Balance handles the GET /wallet/balance endpoint
func (h *WalletHandler) Balance(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	key := cache.BalanceKey(identity.UserID)
	if h.cache != nil {
		var cached dto.BalanceResponse
		hit, err := h.cache.GetJSON(c.Request.Context(), key, &cached)
		if err != nil {
			h.logger.Warn("Balance cache read failed", map[string]any{
				"user_id": identity.UserID,
				"error":   err.Error(),
			})
		}
		if hit {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	balance, err := h.walletService.Balance(c.Request.Context(), identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.BalanceResponse{
		WalletID: balance.WalletID,
		Phone:    balance.Phone,
		Balance:  balance.Balance,
		Status:   string(balance.Status),
	}

	if h.cache != nil {
		if err := h.cache.SetJSON(c.Request.Context(), key, response); err != nil {
			h.logger.Warn("Balance cache write failed", map[string]any{
				"user_id": identity.UserID,
				"error":   err.Error(),
			})
		}
	}

	c.JSON(http.StatusOK, response)
}
