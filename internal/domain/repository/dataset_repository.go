package repository

import (
	"context"
	"io"

	"github.com/pattaya-dashboard/internal/domain"
)

// DatasetLoader читает и разбирает датасет мест по пути
type DatasetLoader interface {
	// Load возвращает ошибку, оборачивающую domain.ErrDataLoad, если файл отсутствует или не разбирается
	Load(ctx context.Context, path string) (*domain.Dataset, error)
}

// DatasetStore - кеш загруженных датасетов с ключом по пути источника
type DatasetStore interface {
	// Get возвращает закешированный датасет или загружает его
	Get(ctx context.Context, path string) (*domain.Dataset, error)

	// Reload сбрасывает запись и загружает датасет заново
	Reload(ctx context.Context, path string) (*domain.Dataset, error)

	// Invalidate удаляет запись для пути
	Invalidate(path string)

	// Clear удаляет все записи
	Clear()
}

// ObjectStorage открывает объекты S3-совместимого хранилища
type ObjectStorage interface {
	Open(ctx context.Context, bucket, key string) (io.ReadCloser, error)
}
