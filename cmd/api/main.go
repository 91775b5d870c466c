package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/go-api-posts/internal/application/post"
	"github.com/go-api-posts/internal/config"
	"github.com/go-api-posts/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-api-posts/internal/infrastructure/jwt"
	"github.com/go-api-posts/internal/infrastructure/memory"
	"github.com/go-api-posts/internal/infrastructure/sns"
	"github.com/go-api-posts/internal/pkg/id"
	transporthttp "github.com/go-api-posts/internal/transport/http"
	appmiddleware "github.com/go-api-posts/internal/transport/http/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped with error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment() {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	zcfg.Level = level
	return zcfg.Build()
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx := context.Background()
	ids := id.NewGenerator()

	var repo post.Repository
	switch cfg.StorageDriver {
	case config.StorageDynamo:
		client, err := dynamo.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		// Creates the tables if they don't exist.
		if err := dynamo.Bootstrap(ctx, client, cfg.DynamoTables, logger); err != nil {
			return fmt.Errorf("bootstrap dynamo tables: %w", err)
		}
		repo = dynamo.NewPostRepo(client, cfg.DynamoTables, ids)
	default:
		repo = memory.NewPostStore(ids)
	}

	deps := &transporthttp.Deps{
		Posts:       repo,
		Metrics:     appmiddleware.NewMetrics(),
		RateLimiter: appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
	defer deps.RateLimiter.Stop()

	if cfg.SNSTopicARN != "" {
		client, err := sns.NewClient(ctx, cfg)
		if err != nil {
			return err
		}
		deps.Notifier = sns.NewPublisher(client, cfg.SNSTopicARN)
	} else {
		logger.Info("SNS_TOPIC_ARN not set, post-created events disabled")
	}

	if cfg.JWTPublicKeyPath != "" {
		verifier, err := jwtinfra.NewVerifier(cfg.JWTPublicKeyPath)
		if err != nil {
			return err
		}
		deps.TokenVerifier = verifier
	} else {
		logger.Warn("JWT_PUBLIC_KEY_PATH not set, write endpoints are open")
	}

	router, err := transporthttp.NewRouter(cfg, deps, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.AppPort),
			zap.String("env", cfg.AppEnv),
			zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
