package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/uybor/uybor-api/docs"
	"github.com/uybor/uybor-api/internal/api"
	"github.com/uybor/uybor-api/internal/core/service"
	"github.com/uybor/uybor-api/internal/infrastructure/config"
	mongodb "github.com/uybor/uybor-api/internal/infrastructure/db/mongo"
	redisdb "github.com/uybor/uybor-api/internal/infrastructure/db/redis"
	"github.com/uybor/uybor-api/internal/infrastructure/queue"
	"github.com/uybor/uybor-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        uybor API
// @version      1.0
// @description  REST backend for the uybor real-estate listing product.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	secret, insecure := cfg.TokenSecret()
	if insecure {
		log.Warn().Msg("JWT_SECRET not set, falling back to the built-in default; do not run this in production")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes failed")
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer rdb.Close()

	// --- Activity trail ---
	activityRepo := mongodb.NewActivityRepository(db)
	activityService := service.NewActivityService(activityRepo, log)
	dispatcher := queue.NewDispatcher(0, activityService, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	tokens := service.NewJWTManager(secret, 24*time.Hour)
	e := api.NewRouter(api.Deps{
		Mongo:    db,
		Redis:    rdb,
		Tokens:   tokens,
		Activity: dispatcher,
		Logger:   log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
		os.Exit(1)
	}
}

// ensureIndexes creates every collection index before the server
// starts accepting traffic; the unique login index in particular must
// exist before the first registration.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongodb.NewAuthRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewHouseRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongodb.NewActressRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongodb.NewActivityRepository(db).EnsureIndexes(ctx)
}
