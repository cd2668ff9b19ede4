package repository

import (
	"context"

	"github.com/pattaya-dashboard/internal/domain"
)

// PlaceMirrorRepository выгружает разрешенный датасет во внешнее хранилище
type PlaceMirrorRepository interface {
	// EnsureSchema создает таблицу, если ее нет
	EnsureSchema(ctx context.Context) error

	// ReplaceAll заменяет содержимое таблицы местами датасета и возвращает число вставленных строк
	ReplaceAll(ctx context.Context, places []domain.Place) (int64, error)

	// Count возвращает число строк в таблице
	Count(ctx context.Context) (int64, error)
}
