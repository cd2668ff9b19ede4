package utils

import (
	"github.com/pattaya-dashboard/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// BoundingBox вычисляет охватывающий прямоугольник мест. Для пустого набора возвращает нулевой прямоугольник.
func BoundingBox(places []domain.Place) domain.BoundingBox {
	if len(places) == 0 {
		return domain.BoundingBox{}
	}

	lats, lons := coordinates(places)
	return domain.BoundingBox{
		MinLat: floats.Min(lats),
		MinLon: floats.Min(lons),
		MaxLat: floats.Max(lats),
		MaxLon: floats.Max(lons),
	}
}

// Centroid возвращает среднюю точку мест
func Centroid(places []domain.Place) domain.Point {
	if len(places) == 0 {
		return domain.Point{}
	}

	lats, lons := coordinates(places)
	return domain.Point{
		Lat: stat.Mean(lats, nil),
		Lon: stat.Mean(lons, nil),
	}
}

func coordinates(places []domain.Place) (lats, lons []float64) {
	lats = make([]float64, len(places))
	lons = make([]float64, len(places))
	for i, p := range places {
		lats[i] = p.Latitude
		lons[i] = p.Longitude
	}
	return lats, lons
}
