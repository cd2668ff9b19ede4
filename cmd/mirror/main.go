// Command mirror loads the places dataset and replaces the contents of a PostgreSQL table with it.
package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pattaya-dashboard/internal/config"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/pkg/logger"
	"github.com/pattaya-dashboard/internal/repository/csvfile"
	"github.com/pattaya-dashboard/internal/repository/objectstore"
	"github.com/pattaya-dashboard/internal/repository/postgres"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	envFile := pflag.String("env", ".env", "path to env file")
	dataPath := pflag.String("data", "", "dataset path, overrides DATA_PATH")
	table := pflag.String("table", "", "target table, overrides MIRROR_TABLE")
	pflag.Parse()

	// 1. Load configuration
	cfg, err := config.LoadFile(*envFile)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	if *dataPath != "" {
		cfg.Data.Path = *dataPath
	}
	if *table != "" {
		cfg.Database.MirrorTable = *table
	}

	// 2. Initialize logger
	baseLog, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer baseLog.Sync()
	log := logger.WithService(baseLog, "dashboard-mirror", cfg.Server.Env)

	if err := run(cfg, log); err != nil {
		log.Fatal("Mirror failed", zap.Error(err))
	}
}

// run выполняет загрузку и зеркалирование; все ресурсы закрываются до возврата
func run(cfg *config.Config, log *zap.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// 3. Load dataset
	var objects repository.ObjectStorage
	if strings.HasPrefix(cfg.Data.Path, "s3://") {
		var err error
		objects, err = objectstore.NewMinioStorage(&cfg.S3, log)
		if err != nil {
			return fmt.Errorf("initialize object storage: %w", err)
		}
	}

	ds, err := csvfile.NewLoader(objects, log).Load(ctx, cfg.Data.Path)
	if err != nil {
		return fmt.Errorf("load dataset %s: %w", cfg.Data.Path, err)
	}

	// 4. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 5. Mirror
	repo := postgres.NewPlaceRepository(db, cfg.Database.MirrorTable)
	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("prepare mirror table: %w", err)
	}

	n, err := repo.ReplaceAll(ctx, ds.Places())
	if err != nil {
		return fmt.Errorf("mirror places: %w", err)
	}

	log.Info("Mirror complete",
		zap.String("table", cfg.Database.MirrorTable),
		zap.Int64("rows", n),
		zap.String("version", ds.Version()),
	)
	return nil
}
