package main

// @title Commute Heatmap API
// @version 1.0.0
// @description Сервис анализа времени поездок по Сан-Франциско. Опрашивает матричный API маршрутов по фиксированной сетке точек отправления, хранит сырые замеры по периодам (час пик и свободные дороги) и сворачивает их в тепловую карту с цветами и легендой.
// @description
// @description Основные возможности:
// @description - Каталог сетки точек отправления и CRUD точек назначения
// @description - Загрузка матрицы времени в пути с батчированием под лимиты провайдера
// @description - Тепловая карта: взвешенные средние, сравнение периодов, недельный режим
// @description - Геокодирование адресов с кешем (Redis или PostgreSQL)

// @contact.name API Support
// @contact.email support@commute-heatmap.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
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

	_ "github.com/commute-heatmap/docs/swagger"
	"github.com/commute-heatmap/internal/config"
	httpDelivery "github.com/commute-heatmap/internal/delivery/http"
	"github.com/commute-heatmap/internal/delivery/http/handler"
	"github.com/commute-heatmap/internal/domain/repository"
	"github.com/commute-heatmap/internal/infrastructure/geocoding"
	"github.com/commute-heatmap/internal/infrastructure/routes"
	"github.com/commute-heatmap/internal/pkg/logger"
	"github.com/commute-heatmap/internal/repository/cache"
	"github.com/commute-heatmap/internal/repository/memory"
	"github.com/commute-heatmap/internal/repository/postgres"
	"github.com/commute-heatmap/internal/usecase"
	"github.com/commute-heatmap/internal/worker"
	"github.com/commute-heatmap/internal/worker/refresh"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Commute Heatmap",
		zap.String("env", cfg.Server.Env),
		zap.String("geocode_cache", cfg.Cache.GeocodeBackend),
	)

	// 3. Geocode cache backend (none, redis or postgres)
	geocodeCache, healthChecks, closeCache := buildGeocodeCache(cfg, log)
	defer closeCache()

	// 4. Initialize repositories
	gridRepo := memory.NewGridRepository()
	destRepo := memory.NewDestinationRepository()
	sampleRepo := memory.NewSampleStoreRepository()
	routesRepo := routes.NewRoutesClient(&cfg.Routes, log)
	geocodingRepo := geocoding.NewGeocodingClient(&cfg.Geocoding, log)

	log.Info("Repositories initialized")

	// 5. Initialize use cases
	gridUC := usecase.NewGridUseCase(gridRepo, log)
	destUC := usecase.NewDestinationUseCase(destRepo, geocodingRepo, geocodeCache, log, cfg.Cache.GeocodeTTL)
	fetchUC := usecase.NewFetchUseCase(gridRepo, destRepo, sampleRepo, routesRepo, log)
	heatmapUC := usecase.NewHeatmapUseCase(sampleRepo, destRepo, log)

	log.Info("Use cases initialized")

	// 6. Seed default destinations into the empty catalog
	if cfg.Destinations.SeedDefaults {
		seedCtx, seedCancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := destUC.SeedDefaults(seedCtx); err != nil {
			log.Error("Failed to seed default destinations", zap.Error(err))
		}
		seedCancel()
	}

	// 7. Initialize HTTP handlers
	gridHandler := handler.NewGridHandler(gridUC, log)
	destinationHandler := handler.NewDestinationHandler(destUC, log)
	fetchHandler := handler.NewFetchHandler(fetchUC, log)
	heatmapHandler := handler.NewHeatmapHandler(heatmapUC, log)

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		gridHandler,
		destinationHandler,
		fetchHandler,
		heatmapHandler,
		healthChecks,
	)

	// 9. Background refresh worker
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()

	manager := worker.NewWorkerManager(log)
	if cfg.Worker.Enabled {
		manager.Register(refresh.NewRefreshWorker(fetchUC, cfg.Worker.RefreshInterval, log))
	}
	if err := manager.Start(workerCtx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := manager.Stop(shutdownCtx); err != nil {
		log.Error("Workers shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}

// buildGeocodeCache - выбор бэкенда кеша геокодирования по конфигурации.
// Возвращает репозиторий кеша, health-проверки для /health и функцию закрытия.
func buildGeocodeCache(cfg *config.Config, log *zap.Logger) (repository.GeocodeCacheRepository, []httpDelivery.HealthCheck, func()) {
	switch cfg.Cache.GeocodeBackend {
	case "redis":
		redisClient, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		geocodeCache := cache.NewGeocodeCacheRepository(redisClient)
		checks := []httpDelivery.HealthCheck{
			{Name: "redis", Check: redisClient.Health},
		}
		return geocodeCache, checks, func() {
			if err := geocodeCache.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}

	case "postgres":
		db, err := postgres.New(&cfg.Database, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		geocodeCache, err := postgres.NewGeocodeCacheRepository(db)
		if err != nil {
			log.Fatal("Failed to prepare geocode cache schema", zap.Error(err))
		}
		checks := []httpDelivery.HealthCheck{
			{Name: "postgres", Check: db.Health},
		}
		return geocodeCache, checks, func() {
			if err := geocodeCache.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}

	default:
		// Кеш выключен: каждый промах уходит напрямую к провайдеру геокодирования
		return cache.NewNoopGeocodeCache(), nil, func() {}
	}
}
