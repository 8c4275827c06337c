package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"tripledger/internal/api"
	"tripledger/internal/api/handlers"
	"tripledger/internal/events"
	"tripledger/internal/repository"
	"tripledger/internal/service"
	"tripledger/pkg/auth"
	"tripledger/pkg/config"
	"tripledger/pkg/logger"
	"tripledger/pkg/postgres"

	"go.uber.org/zap"
)

// @title Tripledger API
// @version 1.0
// @description Travel budget tracker with a two-tier emergency fund ledger

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey Bearer
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
	appLogger.Info("Starting tripledger service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	tripRepo := repository.NewTripRepository(db, appLogger)
	expenseRepo := repository.NewExpenseRepository(db, appLogger)
	store := repository.NewLedger(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Optional event publisher
	var notifier *events.Notifier
	if cfg.AMQP.URL != "" {
		notifier, err = events.NewNotifier(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue)
		if err != nil {
			appLogger.Fatal("Failed to connect to AMQP broker", zap.Error(err))
		}
		defer notifier.Close()
	} else {
		appLogger.Info("AMQP_URL not set, fund usage events disabled")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	tripService := service.NewTripService(tripRepo, expenseRepo, appLogger)
	expenseService := service.NewExpenseService(expenseRepo, tripRepo, appLogger)
	resumoService := service.NewResumoService(store, appLogger)
	emergencyService := service.NewEmergencyFundService(store, notifier, appLogger)
	plannerService := service.NewPlannerService(appLogger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, appLogger)
	tripHandler := handlers.NewTripHandler(tripService, resumoService, emergencyService, appLogger)
	expenseHandler := handlers.NewExpenseHandler(expenseService, appLogger)
	plannerHandler := handlers.NewPlannerHandler(plannerService, appLogger)

	// Setup router
	app := api.SetupRouter(authHandler, tripHandler, expenseHandler, plannerHandler, jwtManager, appLogger)

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
