package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHttp "github.com/shared-city/backend/internal/api/http"
	"github.com/shared-city/backend/internal/cache"
	"github.com/shared-city/backend/internal/config"
	"github.com/shared-city/backend/internal/db"
	"github.com/shared-city/backend/internal/db/migrate"
	"github.com/shared-city/backend/internal/queue/asynqserver"
	queueClient "github.com/shared-city/backend/internal/queue/client"
	"github.com/shared-city/backend/internal/repository"
	"github.com/shared-city/backend/internal/server"
	"github.com/shared-city/backend/internal/service"
	"github.com/shared-city/backend/internal/service/llm"
	"github.com/shared-city/backend/internal/worker"
	"github.com/shared-city/backend/pkg/auth"
	"github.com/shared-city/backend/pkg/hash"
	"github.com/shared-city/backend/pkg/logger"
	"github.com/shared-city/backend/pkg/otp"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const janitorInterval = time.Minute

func main() {
	// Init cfg from environment variables
	cfg := config.MustLoad()

	appLogger := logger.SetupLogger(cfg.Env, cfg.LogLevel)
	defer logger.Sync()

	appLogger.Info("starting backend api", zap.String("env", cfg.Env))
	appLogger.Debug("debug messages are enabled")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init database
	if cfg.Database.AutoMigrate {
		dsn, err := db.MigrationDSN(cfg.Database)
		if err != nil {
			appLogger.Fatal("migration dsn", zap.Error(err))
		}
		if err := migrate.Run(dsn, migrate.DirectionUp); err != nil {
			appLogger.Fatal("apply migrations failed", zap.Error(err))
		}
		appLogger.Info("migrations applied")
	}

	dbMySQL, err := db.New(cfg.Database)
	if err != nil {
		appLogger.Fatal("mysql connect problem", zap.Error(err))
	}
	defer func() {
		if err := dbMySQL.Close(); err != nil {
			appLogger.Error("error when closing", zap.Error(err))
		}
	}()
	appLogger.Info("mysql connection done")

	// Init code store
	store, err := newStore(ctx, cfg.Cache)
	if err != nil {
		appLogger.Fatal("cache init failed", zap.Error(err))
	}
	appLogger.Info("cache ready", zap.String("type", cfg.Cache.Type))

	otpGenerator, err := newOTPGenerator(cfg.Auth.CodeGenerator)
	if err != nil {
		appLogger.Fatal("otp generator", zap.Error(err))
	}

	tokenManager, err := auth.NewManager(cfg.Auth.JWT.SigningKey, cfg.Auth.JWT.AccessTokenTTL)
	if err != nil {
		appLogger.Fatal("auth manager creation err", zap.Error(err))
	}

	// Code delivery
	var codeSender service.CodeSender
	if cfg.SMS.Async {
		if cfg.Cache.Type == cache.TypeMemory {
			appLogger.Fatal("async sms delivery needs redis")
		}
		asynqClient := asynq.NewClient(asynqserver.RedisOptions(cfg.Cache))
		defer func() { _ = asynqClient.Close() }()
		restore := queueClient.SetClient(asynqClient)
		defer restore()

		codeSender = queueClient.NewCodeSender(cfg.Auth.VerificationCodeTTL)
		appLogger.Info("verification codes go through the queue")
	} else {
		smsSender, err := worker.NewSMSSender(ctx, cfg.SMS, appLogger)
		if err != nil {
			appLogger.Fatal("sms sender creation failed", zap.Error(err))
		}
		codeSender = worker.NewWorkers(worker.Deps{SMSSender: smsSender, Config: cfg}).CodeSender
	}

	var chatClient service.ChatClient
	if cfg.Assistant.Enabled {
		chatClient = llm.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Model, cfg.Assistant.Timeout)
	}

	// Services, Repos & API Handlers
	repos := repository.NewRepositories(dbMySQL)
	services := service.NewServices(service.Deps{
		Config:       cfg,
		Hasher:       hash.NewSHA256Hasher(cfg.Auth.TokenSalt),
		TokenManager: tokenManager,
		OtpGenerator: otpGenerator,
		Repos:        repos,
		Store:        store,
		History:      store,
		CodeSender:   codeSender,
		ChatClient:   chatClient,
	})

	if cfg.Database.SeedDemoProjects {
		seeded, err := services.Projects.SeedDefaults(ctx)
		if err != nil {
			appLogger.Error("seed demo projects failed", zap.Error(err))
		} else if seeded > 0 {
			appLogger.Info("demo projects seeded", zap.Int("count", seeded))
		}
	}

	handlers := apiHttp.NewHandlers(services, tokenManager, cfg, apiHttp.HealthChecks{
		"mysql": dbMySQL.PingContext,
		"cache": store.Ping,
	})

	// HTTP Server
	srv := server.NewServer(cfg, handlers.Init(cfg))
	go func() {
		if err := srv.Run(); !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("error occurred while running http server", zap.Error(err))
		}
	}()
	appLogger.Info("server started", zap.String("port", cfg.HttpServer.Port))

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	<-quit

	const timeout = 5 * time.Second

	shutdownCtx, shutdown := context.WithTimeout(context.Background(), timeout)
	defer shutdown()

	if err := srv.Stop(shutdownCtx); err != nil {
		appLogger.Error("failed to stop server", zap.Error(err))
	}

	appLogger.Info("app stopped")
}

type historyStore interface {
	cache.Store
	cache.History
}

func newStore(ctx context.Context, cfg config.Cache) (historyStore, error) {
	if cfg.Type == cache.TypeMemory {
		memory := cache.NewMemoryStore()
		go memory.RunJanitor(ctx, janitorInterval)
		return memory, nil
	}

	client, err := cache.NewRedis(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return cache.NewRedisStore(client), nil
}

func newOTPGenerator(kind string) (otp.Generator, error) {
	switch kind {
	case config.CodeGeneratorCrypto, "":
		return otp.NewCryptoGenerator(), nil
	case config.CodeGeneratorHOTP:
		return otp.NewGOTPGenerator(), nil
	}
	return nil, fmt.Errorf("unknown code generator %q", kind)
}
