package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/pkg/utils"
	"go.uber.org/zap"
)

const statsCacheTTL = time.Hour

// StatsUseCase обрабатывает бизнес-логику для статистики
type StatsUseCase struct {
	dashboard *DashboardUseCase
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

// NewStatsUseCase создает новый экземпляр StatsUseCase
func NewStatsUseCase(
	dashboard *DashboardUseCase,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		dashboard: dashboard,
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.Statistics, error) {
	ds, err := uc.dashboard.Dataset(ctx)
	if err != nil {
		return nil, fmt.Errorf("get statistics: %w", err)
	}

	key := "stats:" + ds.Version()

	// 1. Проверяем кеш
	if uc.cacheRepo != nil {
		data, err := uc.cacheRepo.Get(ctx, key)
		if err != nil {
			uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
		} else if data != nil {
			var cached domain.Statistics
			if err := utils.DecodeMsgpack(data, &cached); err == nil {
				uc.logger.Debug("Statistics fetched from cache")
				return &cached, nil
			}
		}
	}

	// 2. Считаем по датасету
	stats := ComputeStatistics(ds)

	// 3. Кешируем на 1 час
	if uc.cacheRepo != nil {
		data, err := utils.EncodeMsgpack(stats)
		if err == nil {
			err = uc.cacheRepo.Set(ctx, key, data, statsCacheTTL)
		}
		if err != nil {
			uc.logger.Warn("Failed to cache stats", zap.Error(err))
			// Не возвращаем ошибку, т.к. данные уже получены
		}
	}

	return stats, nil
}

// ComputeStatistics считает сводную статистику датасета
func ComputeStatistics(ds *domain.Dataset) *domain.Statistics {
	places := ds.Places()

	byCategory := make(map[string]int)
	alwaysOpen, overnight := 0, 0
	for _, p := range places {
		byCategory[p.MainCategory]++
		switch {
		case p.OpenHour == 0 && p.CloseHour == 24:
			alwaysOpen++
		case p.OpenHour > p.CloseHour:
			overnight++
		}
	}

	bbox := utils.BoundingBox(places)
	center := utils.Centroid(places)

	return &domain.Statistics{
		Places: domain.PlaceStats{
			TotalPlaces:    ds.Len(),
			DroppedRows:    ds.Dropped(),
			ByMainCategory: byCategory,
			AlwaysOpen:     alwaysOpen,
			OvernightOpen:  overnight,
		},
		Coverage: domain.CoverageStats{
			BBoxMinLat: bbox.MinLat,
			BBoxMaxLat: bbox.MaxLat,
			BBoxMinLon: bbox.MinLon,
			BBoxMaxLon: bbox.MaxLon,
			CenterLat:  center.Lat,
			CenterLon:  center.Lon,
		},
		Source:      ds.Source(),
		DataVersion: ds.Version(),
		LastUpdated: ds.LoadedAt(),
	}
}
