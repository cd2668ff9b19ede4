package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pattaya-dashboard/internal/config"
	"go.uber.org/zap"
)

// pingTimeout ограничивает проверку соединения при старте
const pingTimeout = 5 * time.Second

// DB - пул соединений к PostgreSQL, в который зеркалируется датасет
type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

// New открывает пул через драйвер pgx и проверяет соединение.
// При неудачной проверке пул закрывается.
func New(cfg *config.DatabaseConfig, logger *zap.Logger) (*DB, error) {
	sqlDB, err := sqlx.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		if cerr := sqlDB.Close(); cerr != nil {
			logger.Warn("Failed to close PostgreSQL pool after ping failure", zap.Error(cerr))
		}
		return nil, fmt.Errorf("failed to ping database %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.DBName),
		zap.String("mirror_table", cfg.MirrorTable),
	)

	return &DB{DB: sqlDB, logger: logger}, nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest оборачивает готовое соединение, logger может быть nil
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
