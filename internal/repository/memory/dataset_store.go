package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/pkg/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// datasetStore кеширует загруженные датасеты по пути на все время жизни процесса
type datasetStore struct {
	loader  repository.DatasetLoader
	logger  *zap.Logger
	mu      sync.RWMutex
	entries map[string]*domain.Dataset
	group   singleflight.Group
}

// NewDatasetStore создает хранилище датасетов поверх загрузчика
func NewDatasetStore(loader repository.DatasetLoader, logger *zap.Logger) repository.DatasetStore {
	return &datasetStore{
		loader:  loader,
		logger:  logger,
		entries: make(map[string]*domain.Dataset),
	}
}

func (s *datasetStore) Get(ctx context.Context, path string) (*domain.Dataset, error) {
	if ds, ok := s.lookup(path); ok {
		return ds, nil
	}

	// Concurrent first callers share a single load; failed loads are not cached.
	v, err, shared := s.group.Do(path, func() (interface{}, error) {
		if ds, ok := s.lookup(path); ok {
			return ds, nil
		}

		ds, err := s.loader.Load(ctx, path)
		if err != nil {
			metrics.DatasetLoadsTotal.WithLabelValues("error").Inc()
			return nil, err
		}
		metrics.DatasetLoadsTotal.WithLabelValues("success").Inc()
		metrics.DatasetPlaces.Set(float64(ds.Len()))
		metrics.DatasetDroppedRows.Set(float64(ds.Dropped()))

		s.mu.Lock()
		s.entries[path] = ds
		s.mu.Unlock()

		return ds, nil
	})
	if err != nil {
		s.logger.Error("Failed to load dataset", zap.String("path", path), zap.Error(err))
		return nil, err
	}

	if shared {
		s.logger.Debug("Dataset load shared between callers", zap.String("path", path))
	}

	ds, ok := v.(*domain.Dataset)
	if !ok {
		return nil, fmt.Errorf("unexpected dataset type %T", v)
	}
	return ds, nil
}

func (s *datasetStore) Reload(ctx context.Context, path string) (*domain.Dataset, error) {
	s.Invalidate(path)
	return s.Get(ctx, path)
}

func (s *datasetStore) Invalidate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries[path]; ok {
		delete(s.entries, path)
		s.logger.Info("Dataset cache entry invalidated", zap.String("path", path))
	}
}

func (s *datasetStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*domain.Dataset)
	s.logger.Info("Dataset cache cleared")
}

func (s *datasetStore) lookup(path string) (*domain.Dataset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ds, ok := s.entries[path]
	return ds, ok
}
