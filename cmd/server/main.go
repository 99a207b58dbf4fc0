package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/applyflow/outreach-system/internal/api"
	"github.com/applyflow/outreach-system/internal/core/ports"
	"github.com/applyflow/outreach-system/internal/infrastructure/config"
	mongodb "github.com/applyflow/outreach-system/internal/infrastructure/db/mongo"
	redisdb "github.com/applyflow/outreach-system/internal/infrastructure/db/redis"
	"github.com/applyflow/outreach-system/internal/infrastructure/storage"
	"github.com/applyflow/outreach-system/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		fallback := logger.Get()
		fallback.Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure mongodb indexes")
	}

	// Redis only backs the pre-flight cache; the service runs without it.
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, pre-flight cache disabled")
		rdb = nil
	} else {
		defer rdb.Close()
	}

	files, err := newFileStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init file store")
	}

	e := api.NewRouter(api.Dependencies{
		Config: cfg,
		Logger: logger.Component("api"),
		DB:     db,
		Redis:  rdb,
		Files:  files,
	})

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newFileStore selects the resume storage backend from configuration.
func newFileStore(ctx context.Context, cfg *config.Config) (ports.FileStore, error) {
	switch cfg.Storage.Backend {
	case "minio":
		return storage.NewMinioStore(ctx, storage.MinioConfig{
			Endpoint:  cfg.Storage.MinioEndpoint,
			AccessKey: cfg.Storage.MinioAccessKey,
			SecretKey: cfg.Storage.MinioSecretKey,
			Bucket:    cfg.Storage.MinioBucket,
			UseSSL:    cfg.Storage.MinioUseSSL,
		})
	default:
		return storage.NewLocalStore(cfg.Storage.LocalDir)
	}
}
