package main

import (
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/fixturematch/backend/config"
	"github.com/fixturematch/backend/internal/catalog"
	httpDelivery "github.com/fixturematch/backend/internal/delivery/http"
	"github.com/fixturematch/backend/internal/infrastructure/cache"
	"github.com/fixturematch/backend/internal/infrastructure/catalogfile"
	"github.com/fixturematch/backend/internal/infrastructure/logging"
	"github.com/fixturematch/backend/internal/infrastructure/metrics"
	"github.com/fixturematch/backend/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.Init(cfg.Logging.Level, cfg.Server.Environment)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	logger.Info("starting fixturematch backend",
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.String("catalog", cfg.Catalog.Path),
	)

	// The predicate chain table is configuration; a malformed pair must
	// fail here, not on the first request.
	if err := usecase.SelfCheck(); err != nil {
		logger.Fatal("chain table self-check failed", zap.Error(err))
	}

	metrics.Register()

	snap, err := catalogfile.Load(cfg.Catalog.Path)
	if err != nil {
		logger.Fatal("failed to load catalog", zap.String("path", cfg.Catalog.Path), zap.Error(err))
	}

	store := catalog.NewStore()
	store.Publish(snap)
	metrics.SnapshotProducts.Set(float64(snap.Len()))
	logger.Info("catalog snapshot published",
		zap.String("version", snap.Version()),
		zap.Int("products", snap.Len()),
	)

	memoryCache := cache.NewMemoryCache(cfg.Cache.TTL)
	engine := usecase.NewEngine(usecase.NewOverrideResolver())
	directory := usecase.NewDirectory(store, engine, memoryCache, usecase.DirectoryConfig{
		CacheTTL: cfg.Cache.TTL,
	})

	handler := httpDelivery.NewHandler(directory, store, cfg.Catalog.Path)
	router := httpDelivery.SetupRouter(cfg, handler)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("server listening", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
