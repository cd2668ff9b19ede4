package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/usecase/dto"
)

func TestDashboardQuery_ToDomain(t *testing.T) {
	hour := 3
	off := false

	tests := []struct {
		name  string
		query dto.DashboardQuery
		want  domain.Query
	}{
		{
			name:  "defaults",
			query: dto.DashboardQuery{},
			want:  domain.Query{Hour: dto.DefaultHour, MainCategory: domain.AllCategories, HeatmapEnabled: true},
		},
		{
			name:  "explicit values",
			query: dto.DashboardQuery{Hour: &hour, Category: " Nightlife ", Heatmap: &off},
			want:  domain.Query{Hour: 3, MainCategory: "Nightlife", HeatmapEnabled: false},
		},
		{
			name:  "blank category means all",
			query: dto.DashboardQuery{Category: "   "},
			want:  domain.Query{Hour: dto.DefaultHour, MainCategory: domain.AllCategories, HeatmapEnabled: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.query.ToDomain(dto.DefaultHour))
		})
	}
}

func TestDashboardQuery_HourZeroIsNotDefault(t *testing.T) {
	zero := 0
	q := dto.DashboardQuery{Hour: &zero}.ToDomain(dto.DefaultHour)
	assert.Equal(t, 0, q.Hour)
}
