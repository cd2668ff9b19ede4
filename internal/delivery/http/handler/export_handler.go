package handler

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pattaya-dashboard/internal/pkg/errors"
	"github.com/pattaya-dashboard/internal/pkg/utils"
	"github.com/pattaya-dashboard/internal/usecase"
	"go.uber.org/zap"
)

// MIMEXLSX - тип содержимого XLSX файла
const MIMEXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler - обработчик выгрузки таблицы
type ExportHandler struct {
	exportUC    *usecase.ExportUseCase
	defaultHour int
	logger      *zap.Logger
}

func NewExportHandler(exportUC *usecase.ExportUseCase, defaultHour int, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		exportUC:    exportUC,
		defaultHour: defaultHour,
		logger:      logger,
	}
}

// ExportTable godoc
// @Summary Выгрузка таблицы открытых мест в XLSX
// @Tags Export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param hour query int false "Час 0-23" default(14)
// @Param category query string false "Основная категория или All" default(All)
// @Success 200 {file} binary
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/export/table.xlsx [get]
func (h *ExportHandler) ExportTable(c *fiber.Ctx) error {
	q, err := parseQuery(c, h.defaultHour)
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := h.exportUC.TableXLSX(c.Context(), q)
	if err != nil {
		appErr := toAppError(err)
		if _, ok := appErr.(*errors.AppError); !ok {
			h.logger.Error("Failed to export table", zap.Error(err))
			appErr = errors.ErrExportFailed
		}
		return utils.SendError(c, appErr)
	}

	c.Set(fiber.HeaderContentType, MIMEXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="active_places_%02d00.xlsx"`, q.Hour))
	return c.Send(data)
}
