package reload

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/worker"
	"go.uber.org/zap"
)

// DefaultDebounce - пауза после последнего события перед перезагрузкой
const DefaultDebounce = 500 * time.Millisecond

// FileWatcher перезагружает датасет при изменении CSV файла
type FileWatcher struct {
	*worker.BaseWorker
	store    repository.DatasetStore
	path     string
	debounce time.Duration
}

// NewFileWatcher создает воркер, следящий за path
func NewFileWatcher(store repository.DatasetStore, path string, debounce time.Duration, logger *zap.Logger) *FileWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &FileWatcher{
		BaseWorker: worker.NewBaseWorker("dataset-file-watcher", logger),
		store:      store,
		path:       filepath.Clean(path),
		debounce:   debounce,
	}
}

// Start блокируется до отмены ctx или вызова Stop.
// Следим за каталогом, а не за файлом: редакторы часто заменяют файл через rename.
func (w *FileWatcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	w.Logger().Info("Watching dataset file", zap.String("path", w.path))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-w.StopChan():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !w.matches(event) {
				continue
			}
			w.Logger().Debug("Dataset file changed", zap.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.Logger().Warn("File watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			_ = refresh(ctx, w.store, w.path, w.Logger())
		}
	}
}

func (w *FileWatcher) matches(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
