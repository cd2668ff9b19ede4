package errors

import "net/http"

var (
	ErrInvalidQuery = New(
		"INVALID_QUERY",
		"Invalid query parameters",
		http.StatusBadRequest,
	)

	ErrDatasetUnavailable = New(
		"DATASET_UNAVAILABLE",
		"Dataset could not be loaded",
		http.StatusServiceUnavailable,
	)

	ErrExportFailed = New(
		"EXPORT_FAILED",
		"Failed to build export file",
		http.StatusInternalServerError,
	)

	ErrNotFound = New(
		"NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
