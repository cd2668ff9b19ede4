package testhelpers

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pattaya-dashboard/internal/config"
	"go.uber.org/zap"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB initializes a test database connection.
// The test is skipped when no database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	// Priority:
	// 1. Environment variables
	// 2. Default values

	port, err := strconv.Atoi(getEnv("TEST_DB_PORT", "5433"))
	if err != nil {
		t.Fatalf("invalid TEST_DB_PORT: %v", err)
	}

	cfg := config.DatabaseConfig{
		Host:     getEnv("TEST_DB_HOST", "localhost"),
		Port:     port,
		User:     getEnv("TEST_DB_USER", "postgres"),
		Password: getEnv("TEST_DB_PASSWORD", "postgres"),
		DBName:   getEnv("TEST_DB_NAME", "pattaya_test"),
		SSLMode:  getEnv("TEST_DB_SSLMODE", "disable"),
	}
	connStr := cfg.DSN() + " connect_timeout=2"

	var db *sqlx.DB
	maxRetries := 3
	retryDelay := 200 * time.Millisecond

	for i := 0; i < maxRetries; i++ {
		db, err = sqlx.Connect("postgres", connStr)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			t.Logf("Database not ready (attempt %d/%d), waiting %v...", i+1, maxRetries, retryDelay)
			time.Sleep(retryDelay)
			retryDelay *= 2 // exponential backoff
		}
	}

	if err != nil {
		t.Skipf("Test database not available after %d attempts: %v", maxRetries, err)
	}

	logger, _ := zap.NewDevelopment()
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TestDB{
		DB:     db,
		Logger: logger,
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// DropTable removes a table created by a test
func (tdb *TestDB) DropTable(ctx context.Context, table string) error {
	_, err := tdb.DB.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %q", table))
	return err
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
