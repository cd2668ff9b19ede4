package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const mirrorBatchSize = 500

type placeRepository struct {
	db    *DB
	table string
}

// placeRow - строка таблицы зеркала
type placeRow struct {
	Row           int     `db:"row_index"`
	Latitude      float64 `db:"lat"`
	Longitude     float64 `db:"lon"`
	MainCategory  string  `db:"main_category"`
	SubCategory   string  `db:"sub_category"`
	DisplayNameTH string  `db:"display_name_th"`
	DisplayNameEN string  `db:"display_name_en"`
	OpenHour      int     `db:"open_hour"`
	CloseHour     int     `db:"close_hour"`
}

// NewPlaceRepository создает репозиторий зеркала мест в таблице table
func NewPlaceRepository(db *DB, table string) repository.PlaceMirrorRepository {
	if table == "" {
		table = "places"
	}
	return &placeRepository{db: db, table: pq.QuoteIdentifier(table)}
}

func (r *placeRepository) EnsureSchema(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			row_index       INTEGER PRIMARY KEY,
			lat             DOUBLE PRECISION NOT NULL,
			lon             DOUBLE PRECISION NOT NULL,
			main_category   TEXT NOT NULL DEFAULT '',
			sub_category    TEXT NOT NULL DEFAULT '',
			display_name_th TEXT NOT NULL DEFAULT '',
			display_name_en TEXT NOT NULL DEFAULT '',
			open_hour       SMALLINT NOT NULL,
			close_hour      SMALLINT NOT NULL,
			loaded_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, r.table)

	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to ensure schema for %s: %w", r.table, err)
	}
	return nil
}

// ReplaceAll заменяет содержимое таблицы одной транзакцией
func (r *placeRepository) ReplaceAll(ctx context.Context, places []domain.Place) (int64, error) {
	start := time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s", r.table)); err != nil {
		return 0, fmt.Errorf("failed to clear %s: %w", r.table, err)
	}

	insert := fmt.Sprintf(`
		INSERT INTO %s (row_index, lat, lon, main_category, sub_category,
			display_name_th, display_name_en, open_hour, close_hour)
		VALUES (:row_index, :lat, :lon, :main_category, :sub_category,
			:display_name_th, :display_name_en, :open_hour, :close_hour)`, r.table)

	var total int64
	for startIdx := 0; startIdx < len(places); startIdx += mirrorBatchSize {
		end := startIdx + mirrorBatchSize
		if end > len(places) {
			end = len(places)
		}

		rows := make([]placeRow, 0, end-startIdx)
		for _, p := range places[startIdx:end] {
			rows = append(rows, toPlaceRow(p))
		}

		res, err := tx.NamedExecContext(ctx, insert, rows)
		if err != nil {
			return 0, fmt.Errorf("failed to insert batch at %d: %w", startIdx, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to read affected rows: %w", err)
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	r.db.logger.Info("Places mirrored",
		zap.String("table", r.table),
		zap.Int64("rows", total),
		zap.Duration("duration", time.Since(start)),
	)

	return total, nil
}

func (r *placeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s", r.table)); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", r.table, err)
	}
	return count, nil
}

func toPlaceRow(p domain.Place) placeRow {
	return placeRow{
		Row:           p.Row,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		MainCategory:  p.MainCategory,
		SubCategory:   p.SubCategory,
		DisplayNameTH: p.DisplayNameTH,
		DisplayNameEN: p.DisplayNameEN,
		OpenHour:      p.OpenHour,
		CloseHour:     p.CloseHour,
	}
}
