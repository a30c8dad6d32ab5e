package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/stakeway/backoffice/internal/domain/usecase/catalog"
	"github.com/stakeway/backoffice/internal/domain/usecase/commission"
	"github.com/stakeway/backoffice/internal/domain/usecase/content"
	"github.com/stakeway/backoffice/internal/domain/usecase/lifecycle"
	"github.com/stakeway/backoffice/internal/domain/usecase/member"
	"github.com/stakeway/backoffice/internal/domain/usecase/vesting"
	"github.com/stakeway/backoffice/internal/domain/usecase/withdrawal"

	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/handler"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/api/routes"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/auth"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/database"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/database/migration"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/logger"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/rates"
	"github.com/stakeway/backoffice/internal/infrastructure/adapter/repository"
	timeProvider "github.com/stakeway/backoffice/internal/infrastructure/adapter/time"
	"github.com/stakeway/backoffice/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
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
	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
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
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger)
	if err := migrationMgr.MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	db := dbManager.DB()
	userRepo := repository.NewUserRepository(db, tp, appLogger)
	transactionRepo := repository.NewTransactionRepository(db, appLogger)
	packageRepo := repository.NewPackageRepository(db, appLogger)
	notificationRepo := repository.NewNotificationRepository(db, appLogger)
	termsRepo := repository.NewTermsRepository(db, appLogger)
	statsRepo := repository.NewStatsRepository(db, appLogger)
	rateRepo := repository.NewRateRepository(db, appLogger)
	uow := database.NewUnitOfWork(db, appLogger, tp)

	// Outbound adapters
	authorizer := auth.NewJWTAuthorizer(
		cfg.Auth.AdminUsername,
		cfg.Auth.AdminPassword,
		cfg.Auth.JWTSecret,
		cfg.Auth.TokenTTL,
		tp,
	)
	rateSource := rates.NewExchangeClient(cfg.Rates.URL, cfg.Rates.Timeout)

	// Use cases
	distributor := commission.NewDistributor(userRepo, appLogger).
		WithMaxChainDepth(cfg.Commission.MaxChainDepth)
	vestingEngine := vesting.NewEngine(transactionRepo, tp, appLogger)
	lifecycleService := lifecycle.NewService(transactionRepo, userRepo, distributor, vestingEngine, appLogger)
	tokenSettlement := withdrawal.NewTokenSettlement(uow, tp, appLogger)
	walletSettlement := withdrawal.NewWalletSettlement(uow, tp, appLogger)
	catalogService := catalog.NewService(packageRepo, tp, appLogger)
	memberService := member.NewService(userRepo, appLogger)
	contentService := content.NewService(
		notificationRepo, termsRepo, statsRepo, rateRepo,
		rateSource, tp, appLogger,
	)

	if err := migration.CreateDefaultPackages(context.Background(), catalogService); err != nil {
		appLogger.Error("Failed to seed default packages", map[string]any{
			"error": err.Error(),
		})
	}

	// HTTP surface
	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, routes.Handlers{
		Auth:        handler.NewAuthHandler(authorizer, appLogger),
		Transaction: handler.NewTransactionHandler(lifecycleService, vestingEngine, appLogger),
		Withdrawal:  handler.NewWithdrawalHandler(tokenSettlement, walletSettlement, appLogger),
		Package:     handler.NewPackageHandler(catalogService, appLogger),
		User:        handler.NewUserHandler(memberService, appLogger),
		Content:     handler.NewContentHandler(contentService, appLogger),
	}, authorizer, appLogger)

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
	appLogger.Flush()
}
