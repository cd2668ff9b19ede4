package worker

import (
	"context"
)

// Worker - фоновая задача под управлением WorkerManager
type Worker interface {
	// Start блокируется, пока не отменен ctx или не вызван Stop
	Start(ctx context.Context) error

	// Stop сигнализирует о завершении, повторный вызов безопасен
	Stop() error

	// Name возвращает имя воркера для логов
	Name() string
}
