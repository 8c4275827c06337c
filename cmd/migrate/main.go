package main

import (
	"log"

	"tripledger/pkg/config"
	"tripledger/pkg/logger"
	"tripledger/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	appLogger.Info("Applying database migrations",
		zap.String("host", cfg.Database.Host),
		zap.String("database", cfg.Database.DBName),
	)

	if err := postgres.RunMigrations(&cfg.Database); err != nil {
		appLogger.Fatal("Migration failed", zap.Error(err))
	}

	appLogger.Info("Database schema is up to date")
}
