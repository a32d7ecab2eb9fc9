package main

// @title Zone Enrichment Service API
// @version 1.0.0
// @description Enriches tabular asset records with Zone and Freguesia labels resolved from KML polygon boundaries. Zone polygons are indexed per sector (Retail, Office, Industrial & Logistics) inferred from file names; freguesia polygons come from one large, gzipped KML that is streamed at startup.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/zone-enrichment/docs"
	"github.com/zone-enrichment/internal/config"
	httpDelivery "github.com/zone-enrichment/internal/delivery/http"
	"github.com/zone-enrichment/internal/delivery/http/handler"
	"github.com/zone-enrichment/internal/geoindex"
	"github.com/zone-enrichment/internal/kml"
	"github.com/zone-enrichment/internal/pkg/logger"
	"github.com/zone-enrichment/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Zone Enrichment Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("zones_dir", cfg.Data.ZonesDir),
	)

	// 3. Build the spatial indexes once, before serving anything.
	// Missing or undecodable source files are fatal here.
	registry, err := loadRegistry(cfg, log)
	if err != nil {
		log.Fatal("Failed to build spatial indexes", zap.Error(err))
	}
	log.Info("Spatial indexes built",
		zap.Strings("sectors", registry.Sectors()),
		zap.Int("freguesia_polygons", registry.Freguesias.Len()),
	)

	// 4. Initialize use case and handlers
	enrichUC := usecase.NewEnrichmentUseCase(registry, log)
	enrichHandler := handler.NewEnrichHandler(enrichUC, cfg.Columns, log)
	healthHandler := handler.NewHealthHandler(registry)

	// 5. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, enrichHandler, healthHandler)

	// 6. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 7. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// loadRegistry runs the one-time index construction: scan and classify
// the zone files, decompress the freguesias KML if needed and stream it
// into the parish index.
func loadRegistry(cfg *config.Config, log *zap.Logger) (*geoindex.Registry, error) {
	loader := kml.NewLoader(log)

	zonePaths, err := kml.ListZoneFiles(cfg.Data.ZonesDir)
	if err != nil {
		return nil, err
	}
	zones, err := loader.BuildZoneIndexes(zonePaths)
	if err != nil {
		return nil, err
	}

	fregPath, err := kml.EnsureUnzipped(cfg.Data.FreguesiasGzPath, cfg.Data.FreguesiasUnzippedPath)
	if err != nil {
		return nil, err
	}
	freguesias, err := loader.BuildFreguesiaIndex(fregPath)
	if err != nil {
		return nil, err
	}

	return geoindex.NewRegistry(zones, freguesias), nil
}
