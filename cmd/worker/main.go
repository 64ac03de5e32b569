package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/shared-city/backend/internal/cache"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/queue/asynqserver"
	"github.com/shared-city/backend/internal/worker"
	"github.com/shared-city/backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	if cfg.Cache.Type == cache.TypeMemory {
		appLogger.Fatal("queue worker needs redis", zap.String("type", cfg.Cache.Type))
	}

	smsSender, err := worker.NewSMSSender(context.Background(), cfg.SMS, appLogger)
	if err != nil {
		appLogger.Fatal("sms sender creation failed", zap.Error(err))
	}

	workers := worker.NewWorkers(worker.Deps{
		SMSSender: smsSender,
		Config:    cfg,
	})

	srv, mux := asynqserver.New(cfg.Cache, workers)
	if err := srv.Start(mux); err != nil {
		appLogger.Fatal("asynq server start failed", zap.Error(err))
	}
	appLogger.Info("worker started", zap.String("provider", cfg.SMS.Provider))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	srv.Shutdown()
	appLogger.Info("worker stopped")
}
