package main

// @title Pattaya Day/Night Dashboard API
// @version 1.0.0
// @description Сервис дашборда мест Паттайи: какие места открыты в выбранный час, какие закрываются прямо сейчас и где ожидать трафик.
// @description
// @description Основные возможности:
// @description - Фильтрация мест по часу и основной категории
// @description - Маркеры открытых мест и тепловая карта закрывающихся
// @description - Топ-5 подкатегорий и таблица с выгрузкой в XLSX
// @description - Перезагрузка датасета без перезапуска сервиса

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
	"strings"
	"syscall"
	"time"

	_ "github.com/pattaya-dashboard/docs"
	"github.com/pattaya-dashboard/internal/config"
	httpDelivery "github.com/pattaya-dashboard/internal/delivery/http"
	"github.com/pattaya-dashboard/internal/delivery/http/handler"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/pkg/logger"
	"github.com/pattaya-dashboard/internal/repository/cache"
	"github.com/pattaya-dashboard/internal/repository/csvfile"
	"github.com/pattaya-dashboard/internal/repository/memory"
	"github.com/pattaya-dashboard/internal/repository/objectstore"
	"github.com/pattaya-dashboard/internal/usecase"
	"github.com/pattaya-dashboard/internal/worker"
	"github.com/pattaya-dashboard/internal/worker/reload"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	baseLog, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer baseLog.Sync()
	log := logger.WithService(baseLog, "dashboard-api", cfg.Server.Env)

	log.Info("Starting Pattaya Dashboard")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("data_path", cfg.Data.Path),
	)

	// 3. Object storage (only for s3:// sources)
	var objects repository.ObjectStorage
	if strings.HasPrefix(cfg.Data.Path, "s3://") {
		objects, err = objectstore.NewMinioStorage(&cfg.S3, log)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
	}

	// 4. Connect to Redis (optional view cache)
	var cacheRepo repository.CacheRepository
	var redisClient *cache.Redis
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient, "pattaya:")
		log.Info("Redis view cache enabled")
	}

	// 5. Initialize Repositories
	loader := csvfile.NewLoader(objects, log)
	store := memory.NewDatasetStore(loader, log)

	// 6. Warm the dataset; a broken file is fatal at startup
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	ds, err := store.Get(ctx, cfg.Data.Path)
	cancel()
	if err != nil {
		log.Fatal("Failed to load dataset", zap.String("path", cfg.Data.Path), zap.Error(err))
	}
	log.Info("Dataset loaded",
		zap.Int("places", ds.Len()),
		zap.Int("dropped", ds.Dropped()),
		zap.String("version", ds.Version()),
	)

	// 7. Initialize Use Cases
	dashboardUC := usecase.NewDashboardUseCase(
		store,
		cacheRepo,
		cfg.Data.Path,
		cfg.Dashboard,
		cfg.Cache.DashboardCacheTTL,
		log,
	)
	statsUC := usecase.NewStatsUseCase(dashboardUC, cacheRepo, log)
	exportUC := usecase.NewExportUseCase(dashboardUC, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUC, log)
	exportHandler := handler.NewExportHandler(exportUC, cfg.Dashboard.DefaultHour, log)
	statsHandler := handler.NewStatsHandler(statsUC, log)
	pageHandler, err := handler.NewPageHandler(cfg.Dashboard)
	if err != nil {
		log.Fatal("Failed to parse dashboard templates", zap.Error(err))
	}

	log.Info("HTTP handlers initialized")

	// 9. Reload workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()

	manager := worker.NewWorkerManager(log)
	if cfg.Data.Watch {
		if objects != nil {
			log.Warn("DATA_WATCH ignored for object storage source")
		} else {
			manager.Register(reload.NewFileWatcher(store, cfg.Data.Path, reload.DefaultDebounce, log))
		}
	}
	if cfg.Data.ReloadSchedule != "" {
		scheduled, err := reload.NewScheduledReloader(store, cfg.Data.Path, cfg.Data.ReloadSchedule, log)
		if err != nil {
			log.Fatal("Failed to schedule dataset reload", zap.Error(err))
		}
		manager.Register(scheduled)
	}
	if manager.Len() > 0 {
		if err := manager.Start(workerCtx); err != nil {
			log.Fatal("Failed to start workers", zap.Error(err))
		}
	}

	// 10. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		dashboardHandler,
		exportHandler,
		statsHandler,
		pageHandler,
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

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop reload workers
	if manager.Len() > 0 {
		if err := manager.Stop(); err != nil {
			log.Error("Workers shutdown error", zap.Error(err))
		}
	}

	// Close Redis connection
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
