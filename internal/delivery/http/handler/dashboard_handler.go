package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pattaya-dashboard/internal/pkg/utils"
	"github.com/pattaya-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// DashboardHandler - обработчик запросов дашборда
type DashboardHandler struct {
	dashboardUC *usecase.DashboardUseCase
	logger      *zap.Logger
}

// NewDashboardHandler - создание нового DashboardHandler
func NewDashboardHandler(dashboardUC *usecase.DashboardUseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
		logger:      logger,
	}
}

// GetDashboard godoc
// @Summary Представление дашборда
// @Description Возвращает показатели, маркеры открытых мест, точки тепловой карты закрывающихся мест, топ-5 подкатегорий и таблицу для выбранного часа и категории. Поддерживает MessagePack через Accept: application/x-msgpack.
// @Tags Dashboard
// @Produce json
// @Produce application/x-msgpack
// @Param hour query int false "Час 0-23" default(14)
// @Param category query string false "Основная категория или All" default(All)
// @Param heatmap query bool false "Слой тепловой карты" default(true)
// @Success 200 {object} utils.SuccessResponse{data=dto.DashboardResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *fiber.Ctx) error {
	q, err := parseQuery(c, h.dashboardUC.DefaultHour())
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.Build(c.Context(), q)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:       result.Stats.ActiveCount,
		DataVersion: result.DataVersion,
	})
}

// GetActivePlaces godoc
// @Summary Открытые места
// @Description Места, открытые в выбранный час, в порядке исходного файла
// @Tags Places
// @Produce json
// @Param hour query int false "Час 0-23" default(14)
// @Param category query string false "Основная категория или All" default(All)
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/places/active [get]
func (h *DashboardHandler) GetActivePlaces(c *fiber.Ctx) error {
	q, err := parseQuery(c, h.dashboardUC.DefaultHour())
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.ActivePlaces(c.Context(), q)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// GetClosingSoonPlaces godoc
// @Summary Закрывающиеся места
// @Description Места, время закрытия которых совпадает с выбранным часом
// @Tags Places
// @Produce json
// @Param hour query int false "Час 0-23" default(14)
// @Param category query string false "Основная категория или All" default(All)
// @Success 200 {object} utils.SuccessResponse{data=dto.PlacesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/places/closing-soon [get]
func (h *DashboardHandler) GetClosingSoonPlaces(c *fiber.Ctx) error {
	q, err := parseQuery(c, h.dashboardUC.DefaultHour())
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.dashboardUC.ClosingSoonPlaces(c.Context(), q)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: result.Total})
}

// GetControls godoc
// @Summary Параметры элементов управления
// @Tags Dashboard
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ControlsResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/controls [get]
func (h *DashboardHandler) GetControls(c *fiber.Ctx) error {
	result, err := h.dashboardUC.Controls(c.Context())
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, result, nil)
}

// ReloadDataset godoc
// @Summary Перезагрузка датасета
// @Description Сбрасывает закешированный датасет и загружает файл заново
// @Tags Dataset
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.ReloadResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/dataset/reload [post]
func (h *DashboardHandler) ReloadDataset(c *fiber.Ctx) error {
	result, err := h.dashboardUC.Reload(c.Context())
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	h.logger.Info("Dataset reloaded via API", zap.String("version", result.DataVersion))
	return utils.SendSuccess(c, result, nil)
}
