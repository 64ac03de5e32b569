package main

import (
	"flag"

	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/db"
	"github.com/shared-city/backend/internal/db/migrate"
	"github.com/shared-city/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	direction := flag.String("direction", migrate.DirectionUp, "migration direction, up or down")
	flag.Parse()

	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	dsn, err := db.MigrationDSN(cfg.Database)
	if err != nil {
		appLogger.Fatal("migration dsn", zap.Error(err))
	}

	if err := migrate.Run(dsn, *direction); err != nil {
		appLogger.Fatal("migration failed", zap.String("direction", *direction), zap.Error(err))
	}

	appLogger.Info("migration done", zap.String("direction", *direction))
}
