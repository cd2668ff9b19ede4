package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type blockingWorker struct {
	*BaseWorker
	started atomic.Bool
}

func (w *blockingWorker) Start(ctx context.Context) error {
	w.started.Store(true)
	select {
	case <-ctx.Done():
	case <-w.StopChan():
	}
	return nil
}

func TestWorkerManager_StartStop(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	require.ErrorIs(t, m.Start(context.Background()), ErrNoWorkers)
	require.NoError(t, m.Stop())

	w := &blockingWorker{BaseWorker: NewBaseWorker("test", zap.NewNop())}
	m.Register(w)
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Start(context.Background()))
	require.Eventually(t, w.started.Load, time.Second, 10*time.Millisecond)

	require.NoError(t, m.Stop())
	assert.True(t, w.IsStopped())

	// second stop is a no-op
	assert.NoError(t, w.Stop())
}

type failingWorker struct {
	*BaseWorker
}

func (w *failingWorker) Start(ctx context.Context) error {
	return errors.New("watch failed")
}

type stuckWorker struct {
	*BaseWorker
	release chan struct{}
}

func (w *stuckWorker) Start(ctx context.Context) error {
	<-w.release
	return nil
}

func TestWorkerManager_StopReturnsWorkerError(t *testing.T) {
	m := NewWorkerManager(zap.NewNop())
	m.Register(&failingWorker{BaseWorker: NewBaseWorker("watcher", zap.NewNop())})
	m.Register(&blockingWorker{BaseWorker: NewBaseWorker("schedule", zap.NewNop())})

	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "worker watcher: watch failed")
}

func TestWorkerManager_StopTimeout(t *testing.T) {
	w := &stuckWorker{BaseWorker: NewBaseWorker("stuck", zap.NewNop()), release: make(chan struct{})}
	defer close(w.release)

	m := NewWorkerManager(zap.NewNop()).WithShutdownTimeout(50 * time.Millisecond)
	m.Register(w)
	require.NoError(t, m.Start(context.Background()))

	err := m.Stop()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
}
