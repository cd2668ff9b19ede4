package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPlaceRepositoryForTest creates a mirror repository bound to table
func NewPlaceRepositoryForTest(db *sqlx.DB, logger *zap.Logger, table string) repository.PlaceMirrorRepository {
	pgDB := NewDBForTest(db, logger)
	return postgres.NewPlaceRepository(pgDB, table)
}
