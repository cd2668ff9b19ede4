package domain

import "time"

type Point struct {
	Lat float64 `json:"lat" db:"lat"`
	Lon float64 `json:"lon" db:"lon"`
}

type BoundingBox struct {
	MinLat float64 `json:"min_lat" db:"min_lat"`
	MinLon float64 `json:"min_lon" db:"min_lon"`
	MaxLat float64 `json:"max_lat" db:"max_lat"`
	MaxLon float64 `json:"max_lon" db:"max_lon"`
}

// Statistics представляет сводную статистику по загруженному датасету
type Statistics struct {
	Places      PlaceStats    `json:"places"`
	Coverage    CoverageStats `json:"coverage"`
	Source      string        `json:"source"`
	DataVersion string        `json:"data_version"`
	LastUpdated time.Time     `json:"last_updated"`
}

// PlaceStats статистика по местам
type PlaceStats struct {
	TotalPlaces    int            `json:"total_places"`
	DroppedRows    int            `json:"dropped_rows"`
	ByMainCategory map[string]int `json:"by_main_category"`
	AlwaysOpen     int            `json:"always_open"`
	OvernightOpen  int            `json:"overnight_open"`
}

// CoverageStats статистика покрытия территории
type CoverageStats struct {
	BBoxMinLat float64 `json:"bbox_min_lat"`
	BBoxMaxLat float64 `json:"bbox_max_lat"`
	BBoxMinLon float64 `json:"bbox_min_lon"`
	BBoxMaxLon float64 `json:"bbox_max_lon"`
	CenterLat  float64 `json:"center_lat"`
	CenterLon  float64 `json:"center_lon"`
}
