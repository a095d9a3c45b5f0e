package main

// @title Toll Route Service API
// @version 1.0.0
// @description Toll cost calculation and trip tracking service for a national
// @description road network. Maintains the toll gate catalogue, computes route
// @description costs per vehicle class, and keeps per-user trip history, trip
// @description statistics and saved routes.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tollgate-service/docs/swagger"
	"github.com/tollgate-service/internal/config"
	httpDelivery "github.com/tollgate-service/internal/delivery/http"
	"github.com/tollgate-service/internal/delivery/http/handler"
	"github.com/tollgate-service/internal/pkg/logger"
	"github.com/tollgate-service/internal/repository/cache"
	"github.com/tollgate-service/internal/repository/postgres"
	"github.com/tollgate-service/internal/usecase"
	"go.uber.org/zap"
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

	log.Info("Starting Toll Route Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Apply schema and seed the catalogue once
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.Migrate(ctx); err != nil {
		cancel()
		log.Fatal("Failed to apply database schema", zap.Error(err))
	}
	if err := db.SeedTollGates(ctx); err != nil {
		cancel()
		log.Fatal("Failed to seed toll gate catalogue", zap.Error(err))
	}
	cancel()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	if err := db.Health(ctx); err != nil {
		cancel()
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		cancel()
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	// 7. Initialize repositories
	tollGateRepo := postgres.NewTollGateRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	savedRouteRepo := postgres.NewSavedRouteRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 8. Initialize use cases
	tollGateUC := usecase.NewTollGateUseCase(
		tollGateRepo,
		cacheRepo,
		log,
		cfg.Cache.CatalogueTTL,
	)

	calculatorUC := usecase.NewCalculatorUseCase(
		tollGateRepo,
		log,
	)

	tripUC := usecase.NewTripUseCase(
		tripRepo,
		cacheRepo,
		log,
		cfg.Cache.StatsTTL,
	)

	savedRouteUC := usecase.NewSavedRouteUseCase(
		savedRouteRepo,
		log,
	)

	log.Info("Use cases initialized")

	// 9. Initialize HTTP handlers
	tollGateHandler := handler.NewTollGateHandler(tollGateUC, log)
	calculateHandler := handler.NewCalculateHandler(calculatorUC, log)
	tripHandler := handler.NewTripHandler(tripUC, log)
	savedRouteHandler := handler.NewSavedRouteHandler(savedRouteUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		tollGateHandler,
		calculateHandler,
		tripHandler,
		savedRouteHandler,
		healthHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
