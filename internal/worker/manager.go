package worker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout - сколько Stop ждет завершения воркеров
const DefaultShutdownTimeout = 30 * time.Second

// ErrNoWorkers возвращается Start, если не зарегистрировано ни одного воркера
var ErrNoWorkers = errors.New("no workers registered")

// WorkerManager запускает фоновые перезагрузки датасета и останавливает их при завершении сервиса
type WorkerManager struct {
	workers         []Worker
	logger          *zap.Logger
	group           *errgroup.Group
	shutdownTimeout time.Duration
	mu              sync.Mutex
}

// NewWorkerManager создает менеджер с DefaultShutdownTimeout
func NewWorkerManager(logger *zap.Logger) *WorkerManager {
	return &WorkerManager{
		workers:         make([]Worker, 0),
		logger:          logger,
		shutdownTimeout: DefaultShutdownTimeout,
	}
}

// WithShutdownTimeout меняет время ожидания в Stop
func (m *WorkerManager) WithShutdownTimeout(d time.Duration) *WorkerManager {
	m.shutdownTimeout = d
	return m
}

// Register регистрирует воркер
func (m *WorkerManager) Register(w Worker) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.workers = append(m.workers, w)
	m.logger.Info("Worker registered", zap.String("name", w.Name()))
}

// Len возвращает число зарегистрированных воркеров
func (m *WorkerManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.workers)
}

func (m *WorkerManager) snapshot() []Worker {
	m.mu.Lock()
	defer m.mu.Unlock()
	workers := make([]Worker, len(m.workers))
	copy(workers, m.workers)
	return workers
}

// Start запускает каждый воркер в своей горутине и сразу возвращается.
// Ошибка одного воркера не останавливает остальные.
func (m *WorkerManager) Start(ctx context.Context) error {
	workers := m.snapshot()
	if len(workers) == 0 {
		return ErrNoWorkers
	}

	g := new(errgroup.Group)
	m.mu.Lock()
	m.group = g
	m.mu.Unlock()

	m.logger.Info("Starting workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		g.Go(func() error {
			m.logger.Info("Starting worker", zap.String("name", w.Name()))
			if err := w.Start(ctx); err != nil {
				m.logger.Error("Worker failed", zap.String("name", w.Name()), zap.Error(err))
				return fmt.Errorf("worker %s: %w", w.Name(), err)
			}
			return nil
		})
	}

	return nil
}

// Stop сигнализирует всем воркерам и ждет их не дольше shutdownTimeout.
// Возвращает первую ошибку воркера, если она была.
func (m *WorkerManager) Stop() error {
	workers := m.snapshot()
	m.logger.Info("Stopping workers", zap.Int("count", len(workers)))

	for _, w := range workers {
		if err := w.Stop(); err != nil {
			m.logger.Error("Failed to stop worker", zap.String("name", w.Name()), zap.Error(err))
		}
	}

	m.mu.Lock()
	g := m.group
	m.mu.Unlock()
	if g == nil {
		return nil
	}

	done := make(chan error, 1)
	go func() { done <- g.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
		m.logger.Info("All workers stopped gracefully")
		return nil
	case <-time.After(m.shutdownTimeout):
		m.logger.Warn("Workers shutdown timed out, a reload may still be running",
			zap.Duration("timeout", m.shutdownTimeout))
		return fmt.Errorf("workers shutdown timed out after %v", m.shutdownTimeout)
	}
}
