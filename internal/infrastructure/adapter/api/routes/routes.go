package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	authport "github.com/sealpay/wallet-ledger/internal/domain/port/auth"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	issuer authport.TokenIssuer,
	authHandler *handler.AuthHandler,
	transferHandler *handler.TransferHandler,
	historyHandler *handler.HistoryHandler,
	walletHandler *handler.WalletHandler,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public routes
	authRoutes := router.Group("/auth")
	{
		authRoutes.POST("/register", authHandler.Register)
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/refresh", authHandler.Refresh)
	}

	// Authenticated routes
	authorized := router.Group("/")
	authorized.Use(middleware.Auth(issuer))
	{
		authorized.POST("/auth/logout", authHandler.Logout)

		transactions := authorized.Group("/transactions")
		{
			transactions.POST("/transfer", transferHandler.Transfer)
			transactions.GET("/history", historyHandler.History)
			transactions.GET("/sent", historyHandler.Sent)
			transactions.GET("/received", historyHandler.Received)
		}

		authorized.GET("/wallet/balance", walletHandler.Balance)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
