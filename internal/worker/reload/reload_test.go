package reload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pattaya-dashboard/internal/domain"
)

// fakeStore counts reloads; Get and Invalidate are unused by the workers
type fakeStore struct {
	mu      sync.Mutex
	paths   []string
	reloads atomic.Int32
	err     error
}

func (s *fakeStore) Get(ctx context.Context, path string) (*domain.Dataset, error) {
	return domain.NewDataset(path, "v", nil, 0, time.Now()), nil
}

func (s *fakeStore) Reload(ctx context.Context, path string) (*domain.Dataset, error) {
	s.mu.Lock()
	s.paths = append(s.paths, path)
	s.mu.Unlock()
	s.reloads.Add(1)
	if s.err != nil {
		return nil, s.err
	}
	return domain.NewDataset(path, "v", nil, 0, time.Now()), nil
}

func (s *fakeStore) Invalidate(path string) {}

func (s *fakeStore) Clear() {}

func TestFileWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "places.csv")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o644))

	store := &fakeStore{}
	w := NewFileWatcher(store, path, 50*time.Millisecond, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	// unrelated files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.csv"), []byte("x"), 0o644))

	// several quick writes collapse into one reload
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(path, []byte("b"), 0o644))
	}

	assert.Eventually(t, func() bool { return store.reloads.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), store.reloads.Load())

	store.mu.Lock()
	assert.Equal(t, []string{filepath.Clean(path)}, store.paths)
	store.mu.Unlock()

	require.NoError(t, w.Stop())
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
	assert.True(t, w.IsStopped())
}

func TestFileWatcher_MissingDirectory(t *testing.T) {
	w := NewFileWatcher(&fakeStore{}, filepath.Join(t.TempDir(), "nope", "places.csv"), 0, zap.NewNop())
	err := w.Start(context.Background())
	assert.Error(t, err)
}

func TestScheduledReloader(t *testing.T) {
	store := &fakeStore{err: errors.New("boom")}
	r, err := NewScheduledReloader(store, "places.csv", "@every 1s", zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, "dataset-scheduled-reloader", r.Name())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Start(ctx) }()

	// failures are logged and the schedule keeps running
	assert.Eventually(t, func() bool { return store.reloads.Load() >= 2 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reloader did not stop")
	}
}

func TestScheduledReloader_InvalidSpec(t *testing.T) {
	_, err := NewScheduledReloader(&fakeStore{}, "places.csv", "every so often", zap.NewNop())
	assert.Error(t, err)
}
