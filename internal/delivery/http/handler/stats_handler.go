package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pattaya-dashboard/internal/pkg/utils"
	"github.com/pattaya-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler обрабатывает запросы для статистики
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

// NewStatsHandler создает новый экземпляр StatsHandler
func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Get dataset statistics
// @Description Возвращает сводную статистику по загруженному датасету мест
// @Tags Statistics
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.Statistics}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	ctx := c.Context()

	h.logger.Debug("Handling get statistics request")

	stats, err := h.statsUC.GetStatistics(ctx)
	if err != nil {
		h.logger.Error("Failed to get statistics", zap.Error(err))
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, stats, &utils.Meta{DataVersion: stats.DataVersion})
}
