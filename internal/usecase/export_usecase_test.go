package usecase_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/usecase"
)

func TestExportUseCase_TableXLSX(t *testing.T) {
	ctx := context.Background()
	store := &MockDatasetStore{}
	store.On("Get", ctx, testDataPath).Return(testDataset(), nil)
	uc := usecase.NewExportUseCase(newDashboard(store), zap.NewNop())

	data, err := uc.TableXLSX(ctx, domain.Query{Hour: 14, MainCategory: "Retail"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{usecase.ExportSheetName}, f.GetSheetList())

	rows, err := f.GetRows(usecase.ExportSheetName)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, usecase.ExportHeader, rows[0])
	assert.Equal(t, []string{"7-Eleven", "Retail", "Convenience Store", "0", "24"}, rows[1])
	assert.Equal(t, []string{"เซ็นทรัล", "Retail", "Shopping Mall", "10", "22"}, rows[3])
}

func TestExportUseCase_TableXLSX_Empty(t *testing.T) {
	ctx := context.Background()
	store := &MockDatasetStore{}
	store.On("Get", ctx, testDataPath).Return(testDataset(), nil)
	uc := usecase.NewExportUseCase(newDashboard(store), zap.NewNop())

	data, err := uc.TableXLSX(ctx, domain.Query{Hour: 3, MainCategory: "Culture"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(usecase.ExportSheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
