package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	historyUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/history"
	transferUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/transfer"
	userUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/user"
	walletUseCase "github.com/sealpay/wallet-ledger/internal/domain/usecase/wallet"

	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/routes"
	authAdapter "github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/auth"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/cache"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/database"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/database/migration"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/logger"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/repository"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/session"
	timeProvider "github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/time"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(logLevelFromString(cfg.Logger.Level))
	defer func() {
		_ = appLogger.Flush()
	}()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		_ = dbManager.Close()
	}()

	migrationMgr := migration.NewManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		_ = redisClient.Close()
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		appLogger.Error("Failed to connect to Redis", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Adapters
	walletRepo := repository.NewWalletRepository(dbManager.DB(), tp, appLogger)
	ledgerRepo := repository.NewLedgerRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	hasher := authAdapter.NewBcryptHasher(cfg.Auth.BcryptCost)
	issuer := authAdapter.NewJWTIssuer(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, tp)
	sessions := session.NewRedisStore(redisClient)

	var cacheStore *cache.Store
	if cfg.Cache.Enabled {
		cacheStore = cache.NewStore(redisClient, cfg.Cache.TTL)
	}

	// Use cases
	userService := userUseCase.NewService(uow, hasher, issuer, sessions, tp, appLogger, cfg.Auth.RefreshTokenTTL)
	transferService := transferUseCase.NewService(uow, tp, appLogger, cfg.Transfer.Timeout)
	historyService := historyUseCase.NewService(ledgerRepo, appLogger)
	walletService := walletUseCase.NewService(walletRepo, appLogger)

	// HTTP layer
	authHandler := handler.NewAuthHandler(userService, appLogger)
	transferHandler := handler.NewTransferHandler(transferService, cacheStore, appLogger)
	historyHandler := handler.NewHistoryHandler(historyService, cacheStore, appLogger)
	walletHandler := handler.NewWalletHandler(walletService, cacheStore, appLogger)

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, issuer, authHandler, transferHandler, historyHandler, walletHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// logLevelFromString maps the configured level name to the core log level
func logLevelFromString(level string) coreport.LogLevel {
	switch level {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}
