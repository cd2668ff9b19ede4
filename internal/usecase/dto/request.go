package dto

import (
	"strings"

	"github.com/pattaya-dashboard/internal/domain"
)

// DefaultHour - час, выбранный в панели управления по умолчанию
const DefaultHour = 14

// DashboardQuery - параметры запроса дашборда из query string
type DashboardQuery struct {
	Hour     *int   `query:"hour" validate:"omitempty,min=0,max=23"`
	Category string `query:"category" validate:"max=200"`
	Heatmap  *bool  `query:"heatmap"`
}

// ToDomain подставляет значения по умолчанию: час defaultHour, категория "All", тепловая карта включена
func (q DashboardQuery) ToDomain(defaultHour int) domain.Query {
	hour := defaultHour
	if q.Hour != nil {
		hour = *q.Hour
	}

	category := strings.TrimSpace(q.Category)
	if category == "" {
		category = domain.AllCategories
	}

	heatmap := true
	if q.Heatmap != nil {
		heatmap = *q.Heatmap
	}

	return domain.Query{
		Hour:           hour,
		MainCategory:   category,
		HeatmapEnabled: heatmap,
	}
}
