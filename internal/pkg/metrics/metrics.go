package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal - количество HTTP запросов по маршруту, методу и статусу
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration - длительность HTTP запросов
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dashboard_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// DatasetLoadsTotal - количество загрузок датасета по результату
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_dataset_loads_total",
			Help: "Total number of dataset loads",
		},
		[]string{"result"},
	)

	// DatasetPlaces - число мест в последнем загруженном датасете
	DatasetPlaces = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_dataset_places",
			Help: "Number of places in the most recently loaded dataset",
		},
	)

	// DatasetDroppedRows - число строк без координат в последнем загруженном датасете
	DatasetDroppedRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_dataset_dropped_rows",
			Help: "Number of rows dropped for missing coordinates in the most recent load",
		},
	)

	// ViewCacheLookups - обращения к кешу представлений дашборда
	ViewCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_view_cache_lookups_total",
			Help: "Dashboard view cache lookups by result",
		},
		[]string{"result"},
	)
)
