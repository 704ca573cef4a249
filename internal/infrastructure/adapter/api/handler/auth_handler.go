package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerr "github.com/sealpay/wallet-ledger/internal/domain/error"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	userUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/user"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles registration and authentication HTTP requests
type AuthHandler struct {
	userService *userUseCase.Service
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *userUseCase.Service, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint. Creating an account
// also creates the user's wallet.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.userService.Register(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		UserID:    u.ID,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pair, err := h.userService.Login(c.Request.Context(), req.Phone, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

// Logout handles the POST /auth/logout endpoint. Every refresh session the
// caller holds is revoked.
func (h *AuthHandler) Logout(c *gin.Context) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidToken)
		return
	}

	if err := h.userService.Logout(c.Request.Context(), identity.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LogoutResponse{Message: "logged out"})
}

// Refresh handles the POST /auth/refresh endpoint. The presented refresh
// token is revoked and replaced.
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pair, err := h.userService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
