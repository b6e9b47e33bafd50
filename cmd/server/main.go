package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mirador/internal/commons"
	"mirador/internal/config"
	"mirador/internal/dataset"
	"mirador/internal/delivery"
	"mirador/internal/geography"
	"mirador/internal/infrastructure/csvstore"
	"mirador/internal/infrastructure/geo"
	"mirador/internal/infrastructure/logger"
	"mirador/internal/reviews"
	"mirador/internal/sellers"
	"mirador/internal/server"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "internal/config/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := commons.LoadConfig(*configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = config.Load()
	}
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	snap, err := csvstore.Load(cfg.Data)
	if err != nil {
		// Unrecoverable per the error taxonomy: a snapshot that cannot be
		// parsed leaves nothing to serve.
		zapLogger.Fatal("loading dataset", zap.Error(err))
	}
	store := dataset.NewStore(snap)
	zapLogger.Info("dataset loaded",
		zap.Int("orders", len(snap.Orders)),
		zap.Int("customers", len(snap.Customers)),
		zap.Int("orderItems", len(snap.Items)),
		zap.Int("reviews", len(snap.Reviews)),
		zap.Int("sellers", len(snap.Sellers)),
		zap.Int("products", len(snap.Products)),
	)

	boundaries := geo.NewClient(cfg.Geo.BoundariesURL, cfg.Geo.Timeout, zapLogger)

	geographyCtrl := geography.NewModule(store, zapLogger)
	reviewsCtrl := reviews.NewModule(store, zapLogger)
	deliveryCtrl := delivery.NewModule(store, zapLogger)
	sellersCtrl := sellers.NewModule(store, zapLogger)

	router := server.NewRouter(geographyCtrl, reviewsCtrl, deliveryCtrl, sellersCtrl, boundaries, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
