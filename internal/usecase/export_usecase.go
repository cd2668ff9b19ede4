package usecase

import (
	"context"
	"fmt"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ExportSheetName - имя листа XLSX выгрузки
const ExportSheetName = "Active Places"

// ExportHeader - заголовок таблицы выгрузки
var ExportHeader = []string{"Name", "Main Category", "Sub-Category", "Open Hour", "Close Hour"}

// ExportUseCase выгружает таблицу открытых мест
type ExportUseCase struct {
	dashboard *DashboardUseCase
	logger    *zap.Logger
}

func NewExportUseCase(dashboard *DashboardUseCase, logger *zap.Logger) *ExportUseCase {
	return &ExportUseCase{
		dashboard: dashboard,
		logger:    logger,
	}
}

// TableXLSX строит XLSX файл с таблицей открытых мест
func (uc *ExportUseCase) TableXLSX(ctx context.Context, q domain.Query) ([]byte, error) {
	rows, err := uc.dashboard.Table(ctx, q)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]interface{}, len(ExportHeader))
	for i, h := range ExportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(ExportSheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("cell name for row %d: %w", i, err)
		}
		values := []interface{}{r.Name, r.MainCategory, r.SubCategory, r.OpenHour, r.CloseHour}
		if err := f.SetSheetRow(ExportSheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}

	uc.logger.Debug("Table exported",
		zap.Int("hour", q.Hour),
		zap.String("category", q.MainCategory),
		zap.Int("rows", len(rows)),
	)

	return buf.Bytes(), nil
}
