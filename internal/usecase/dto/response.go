package dto

import "github.com/pattaya-dashboard/internal/domain"

// DashboardResponse - полное представление дашборда для выбранного часа и категории
type DashboardResponse struct {
	Query            QueryEcho                 `json:"query"`
	Stats            StatsView                 `json:"stats"`
	Markers          []Marker                  `json:"markers"`
	HeatPoints       [][2]float64              `json:"heat_points"`
	HeatLayer        HeatLayerOptions          `json:"heat_layer"`
	TopSubCategories []domain.SubCategoryCount `json:"top_sub_categories"`
	Table            []TableRow                `json:"table"`
	Controls         ControlsResponse          `json:"controls"`
	Map              MapView                   `json:"map"`
	DataVersion      string                    `json:"data_version"`
}

// QueryEcho - нормализованные параметры, по которым построен ответ
type QueryEcho struct {
	Hour     int    `json:"hour"`
	Category string `json:"category"`
	Heatmap  bool   `json:"heatmap"`
}

// StatsView - заголовочные показатели
type StatsView struct {
	HourLabel        string `json:"hour_label"`
	ActiveCount      int    `json:"active_count"`
	ClosingSoonCount int    `json:"closing_soon_count"`
}

// Marker - маркер открытого места на карте
type Marker struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Name        string  `json:"name"`
	SubCategory string  `json:"sub_category"`
	OpenHour    int     `json:"open_hour"`
	CloseHour   int     `json:"close_hour"`
	Popup       string  `json:"popup"`
}

// HeatGradient - цвета тепловой карты по порогам интенсивности
type HeatGradient struct {
	Low  string `json:"0.4"`
	Mid  string `json:"0.6"`
	High string `json:"1"`
}

type HeatLayerOptions struct {
	Radius   int          `json:"radius"`
	Blur     int          `json:"blur"`
	Gradient HeatGradient `json:"gradient"`
}

// TableRow - строка таблицы открытых мест
type TableRow struct {
	Name         string `json:"name"`
	MainCategory string `json:"main_category"`
	SubCategory  string `json:"sub_category"`
	OpenHour     int    `json:"open_hour"`
	CloseHour    int    `json:"close_hour"`
}

// ControlsResponse - параметры элементов управления
type ControlsResponse struct {
	HourMin        int      `json:"hour_min"`
	HourMax        int      `json:"hour_max"`
	HourDefault    int      `json:"hour_default"`
	Categories     []string `json:"categories"`
	HeatmapDefault bool     `json:"heatmap_default"`
}

// MapView - параметры базовой карты
type MapView struct {
	Center      domain.Point       `json:"center"`
	Zoom        int                `json:"zoom"`
	Tiles       string             `json:"tiles"`
	MarkerColor string             `json:"marker_color"`
	Bounds      domain.BoundingBox `json:"bounds"`
}

// PlacesResponse - список мест с нормализованным запросом
type PlacesResponse struct {
	Query  QueryEcho      `json:"query"`
	Places []domain.Place `json:"places"`
	Total  int            `json:"total"`
}

// ReloadResponse - результат перезагрузки датасета
type ReloadResponse struct {
	Source      string `json:"source"`
	DataVersion string `json:"data_version"`
	Places      int    `json:"places"`
	DroppedRows int    `json:"dropped_rows"`
	LoadedAt    string `json:"loaded_at"`
}
