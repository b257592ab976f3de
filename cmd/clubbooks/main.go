package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"clubbooks/internal/api"
	"clubbooks/internal/api/handlers"
	"clubbooks/internal/repository"
	"clubbooks/internal/service"
	"clubbooks/pkg/auth"
	"clubbooks/pkg/config"
	"clubbooks/pkg/logger"
	"clubbooks/pkg/postgres"

	"go.uber.org/zap"
)

// @title Club Books API
// @version 1.0
// @description Club accounting: transactions, journals, budgets, assets and financial statements

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Club Books service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	journalRepo := repository.NewJournalRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	assetRepo := repository.NewAssetRepository(db, appLogger)
	budgetRepo := repository.NewBudgetRepository(db, appLogger)
	reportRepo := repository.NewReportRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	transactionService := service.NewTransactionService(txRepo, appLogger)
	chartService := service.NewChartService(accountRepo, categoryRepo, appLogger)

	aggregationService := service.NewAggregationService(txRepo, appLogger)
	statementService := service.NewStatementService(aggregationService, assetRepo, journalRepo, cfg.Report, appLogger)
	budgetService := service.NewBudgetService(budgetRepo, aggregationService, appLogger)
	registerService := service.NewRegisterService(txRepo, journalRepo, appLogger)

	depreciationCalc := service.NewDepreciationCalculator(cfg.Report)
	assetService := service.NewAssetService(assetRepo, depreciationCalc, appLogger)
	reportService := service.NewReportService(reportRepo, appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	transactionHandler := handlers.NewTransactionHandler(transactionService, appLogger)
	journalHandler := handlers.NewJournalHandler(registerService, appLogger)
	chartHandler := handlers.NewChartHandler(chartService, appLogger)
	assetHandler := handlers.NewAssetHandler(assetService, appLogger)
	budgetHandler := handlers.NewBudgetHandler(budgetService, appLogger)
	reportHandler := handlers.NewReportHandler(statementService, budgetService, registerService, assetService, reportService, appLogger)

	// Setup router
	app := api.SetupRouter(
		authHandler,
		transactionHandler,
		journalHandler,
		chartHandler,
		assetHandler,
		budgetHandler,
		reportHandler,
		jwtManager,
		appLogger,
	)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
