package usecase

import (
	"context"
	"crypto/md5"
	"fmt"
	"time"

	"github.com/pattaya-dashboard/internal/config"
	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/pkg/metrics"
	"github.com/pattaya-dashboard/internal/pkg/utils"
	"github.com/pattaya-dashboard/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	topSubCategoriesLimit = 5
	heatRadius            = 20
	heatBlur              = 15
	markerColor           = "#2ECC71"
)

// DashboardUseCase строит представления дашборда из закешированного датасета
type DashboardUseCase struct {
	store     repository.DatasetStore
	cacheRepo repository.CacheRepository
	dataPath  string
	settings  config.DashboardConfig
	cacheTTL  time.Duration
	logger    *zap.Logger
}

// NewDashboardUseCase создает новый экземпляр DashboardUseCase.
// cacheRepo может быть nil, тогда представления не кешируются.
func NewDashboardUseCase(
	store repository.DatasetStore,
	cacheRepo repository.CacheRepository,
	dataPath string,
	settings config.DashboardConfig,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *DashboardUseCase {
	return &DashboardUseCase{
		store:     store,
		cacheRepo: cacheRepo,
		dataPath:  dataPath,
		settings:  settings,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// DataPath возвращает путь источника датасета
func (uc *DashboardUseCase) DataPath() string {
	return uc.dataPath
}

// DefaultHour возвращает час, выбранный по умолчанию
func (uc *DashboardUseCase) DefaultHour() int {
	return uc.settings.DefaultHour
}

// Dataset возвращает текущий датасет, загружая его при необходимости
func (uc *DashboardUseCase) Dataset(ctx context.Context) (*domain.Dataset, error) {
	ds, err := uc.store.Get(ctx, uc.dataPath)
	if err != nil {
		uc.logger.Error("Dataset unavailable", zap.String("path", uc.dataPath), zap.Error(err))
		return nil, fmt.Errorf("get dataset: %w", err)
	}
	return ds, nil
}

// Build возвращает полное представление дашборда для запроса
func (uc *DashboardUseCase) Build(ctx context.Context, q domain.Query) (*dto.DashboardResponse, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}

	key := dashboardCacheKey(ds.Version(), q)

	// 1. Проверяем кеш
	if cached := uc.getCached(ctx, key); cached != nil {
		return cached, nil
	}

	// 2. Строим представление
	resp := uc.buildView(ds, q)

	// 3. Кешируем
	uc.setCached(ctx, key, resp)

	return resp, nil
}

// Controls возвращает параметры элементов управления
func (uc *DashboardUseCase) Controls(ctx context.Context) (*dto.ControlsResponse, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	controls := uc.controls(ds)
	return &controls, nil
}

// ActivePlaces возвращает места, открытые в выбранный час
func (uc *DashboardUseCase) ActivePlaces(ctx context.Context, q domain.Query) (*dto.PlacesResponse, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	active, _ := domain.Filter(ds.Places(), q)
	return &dto.PlacesResponse{Query: echo(q), Places: active, Total: len(active)}, nil
}

// ClosingSoonPlaces возвращает места, закрывающиеся ровно в выбранный час
func (uc *DashboardUseCase) ClosingSoonPlaces(ctx context.Context, q domain.Query) (*dto.PlacesResponse, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	_, closing := domain.Filter(ds.Places(), q)
	return &dto.PlacesResponse{Query: echo(q), Places: closing, Total: len(closing)}, nil
}

// Table возвращает проекцию открытых мест для таблицы
func (uc *DashboardUseCase) Table(ctx context.Context, q domain.Query) ([]dto.TableRow, error) {
	ds, err := uc.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	active, _ := domain.Filter(ds.Places(), q)
	return tableRows(active), nil
}

// Reload сбрасывает закешированный датасет и загружает его заново.
// При ошибке запись остается сброшенной.
func (uc *DashboardUseCase) Reload(ctx context.Context) (*dto.ReloadResponse, error) {
	uc.logger.Info("Reloading dataset", zap.String("path", uc.dataPath))

	ds, err := uc.store.Reload(ctx, uc.dataPath)
	if err != nil {
		uc.logger.Error("Dataset reload failed", zap.String("path", uc.dataPath), zap.Error(err))
		return nil, fmt.Errorf("reload dataset: %w", err)
	}

	uc.logger.Info("Dataset reloaded",
		zap.String("version", ds.Version()),
		zap.Int("places", ds.Len()),
	)

	return &dto.ReloadResponse{
		Source:      ds.Source(),
		DataVersion: ds.Version(),
		Places:      ds.Len(),
		DroppedRows: ds.Dropped(),
		LoadedAt:    ds.LoadedAt().UTC().Format(time.RFC3339),
	}, nil
}

func (uc *DashboardUseCase) buildView(ds *domain.Dataset, q domain.Query) *dto.DashboardResponse {
	active, closing := domain.Filter(ds.Places(), q)

	heat := make([][2]float64, 0)
	if q.HeatmapEnabled {
		for _, p := range closing {
			heat = append(heat, [2]float64{p.Latitude, p.Longitude})
		}
	}

	return &dto.DashboardResponse{
		Query: echo(q),
		Stats: dto.StatsView{
			HourLabel:        HourLabel(q.Hour),
			ActiveCount:      len(active),
			ClosingSoonCount: len(closing),
		},
		Markers:    markers(active),
		HeatPoints: heat,
		HeatLayer: dto.HeatLayerOptions{
			Radius: heatRadius,
			Blur:   heatBlur,
			Gradient: dto.HeatGradient{
				Low:  "yellow",
				Mid:  "orange",
				High: "red",
			},
		},
		TopSubCategories: domain.TopSubCategories(active, topSubCategoriesLimit),
		Table:            tableRows(active),
		Controls:         uc.controls(ds),
		Map: dto.MapView{
			Center:      domain.Point{Lat: uc.settings.CenterLat, Lon: uc.settings.CenterLon},
			Zoom:        uc.settings.Zoom,
			Tiles:       uc.settings.Tiles,
			MarkerColor: markerColor,
			Bounds:      utils.BoundingBox(ds.Places()),
		},
		DataVersion: ds.Version(),
	}
}

func (uc *DashboardUseCase) controls(ds *domain.Dataset) dto.ControlsResponse {
	categories := append([]string{domain.AllCategories}, ds.MainCategories()...)
	return dto.ControlsResponse{
		HourMin:        0,
		HourMax:        23,
		HourDefault:    uc.settings.DefaultHour,
		Categories:     categories,
		HeatmapDefault: true,
	}
}

func (uc *DashboardUseCase) getCached(ctx context.Context, key string) *dto.DashboardResponse {
	if uc.cacheRepo == nil {
		return nil
	}

	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		metrics.ViewCacheLookups.WithLabelValues("error").Inc()
		uc.logger.Warn("Failed to get dashboard from cache", zap.String("key", key), zap.Error(err))
		return nil
	}
	if data == nil {
		metrics.ViewCacheLookups.WithLabelValues("miss").Inc()
		return nil
	}

	var resp dto.DashboardResponse
	if err := utils.DecodeMsgpack(data, &resp); err != nil {
		metrics.ViewCacheLookups.WithLabelValues("error").Inc()
		uc.logger.Warn("Failed to decode cached dashboard", zap.String("key", key), zap.Error(err))
		return nil
	}

	metrics.ViewCacheLookups.WithLabelValues("hit").Inc()
	uc.logger.Debug("Dashboard fetched from cache", zap.String("key", key))
	return &resp
}

func (uc *DashboardUseCase) setCached(ctx context.Context, key string, resp *dto.DashboardResponse) {
	if uc.cacheRepo == nil {
		return
	}

	data, err := utils.EncodeMsgpack(resp)
	if err != nil {
		uc.logger.Warn("Failed to encode dashboard for cache", zap.Error(err))
		return
	}

	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache dashboard", zap.String("key", key), zap.Error(err))
		// Не возвращаем ошибку, т.к. представление уже построено
	}
}

// HourLabel форматирует час как "HH:00"
func HourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func dashboardCacheKey(version string, q domain.Query) string {
	categoryHash := fmt.Sprintf("%x", md5.Sum([]byte(q.MainCategory)))
	return fmt.Sprintf("dashboard:%s:%d:%s:%t", version, q.Hour, categoryHash, q.HeatmapEnabled)
}

func echo(q domain.Query) dto.QueryEcho {
	return dto.QueryEcho{Hour: q.Hour, Category: q.MainCategory, Heatmap: q.HeatmapEnabled}
}

func markers(places []domain.Place) []dto.Marker {
	out := make([]dto.Marker, 0, len(places))
	for _, p := range places {
		name := p.DisplayName()
		out = append(out, dto.Marker{
			Lat:         p.Latitude,
			Lon:         p.Longitude,
			Name:        name,
			SubCategory: p.SubCategory,
			OpenHour:    p.OpenHour,
			CloseHour:   p.CloseHour,
			Popup:       fmt.Sprintf("%s / %s / %s - %s", name, p.SubCategory, HourLabel(p.OpenHour), HourLabel(p.CloseHour)),
		})
	}
	return out
}

func tableRows(places []domain.Place) []dto.TableRow {
	rows := make([]dto.TableRow, 0, len(places))
	for _, p := range places {
		rows = append(rows, dto.TableRow{
			Name:         p.DisplayName(),
			MainCategory: p.MainCategory,
			SubCategory:  p.SubCategory,
			OpenHour:     p.OpenHour,
			CloseHour:    p.CloseHour,
		})
	}
	return rows
}
