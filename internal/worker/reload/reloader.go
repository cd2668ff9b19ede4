// Package reload содержит воркеры, обновляющие закешированный датасет
package reload

import (
	"context"
	"time"

	"github.com/pattaya-dashboard/internal/domain/repository"
	"go.uber.org/zap"
)

const reloadTimeout = time.Minute

// refresh сбрасывает запись датасета и сразу загружает ее заново.
// Ошибка загрузки только логируется: запись остается сброшенной до следующей успешной загрузки.
func refresh(ctx context.Context, store repository.DatasetStore, path string, logger *zap.Logger) error {
	ctx, cancel := context.WithTimeout(ctx, reloadTimeout)
	defer cancel()

	ds, err := store.Reload(ctx, path)
	if err != nil {
		logger.Error("Dataset reload failed", zap.String("path", path), zap.Error(err))
		return err
	}

	logger.Info("Dataset reloaded",
		zap.String("path", path),
		zap.String("version", ds.Version()),
		zap.Int("places", ds.Len()),
		zap.Int("dropped", ds.Dropped()),
	)
	return nil
}
