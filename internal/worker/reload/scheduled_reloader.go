package reload

import (
	"context"
	"fmt"

	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/worker"
	"github.com/robfig/cron"
	"go.uber.org/zap"
)

// ScheduledReloader перезагружает датасет по расписанию cron
type ScheduledReloader struct {
	*worker.BaseWorker
	store repository.DatasetStore
	path  string
	spec  string
	cron  *cron.Cron
}

// NewScheduledReloader разбирает расписание сразу, ошибка возвращается при создании.
// spec - "@every 10m" или выражение cron с секундами.
func NewScheduledReloader(store repository.DatasetStore, path, spec string, logger *zap.Logger) (*ScheduledReloader, error) {
	r := &ScheduledReloader{
		BaseWorker: worker.NewBaseWorker("dataset-scheduled-reloader", logger),
		store:      store,
		path:       path,
		spec:       spec,
		cron:       cron.New(),
	}

	if err := r.cron.AddFunc(spec, r.run); err != nil {
		return nil, fmt.Errorf("invalid reload schedule %q: %w", spec, err)
	}

	return r, nil
}

// Start блокируется до отмены ctx или вызова Stop
func (r *ScheduledReloader) Start(ctx context.Context) error {
	r.Logger().Info("Scheduled dataset reload enabled",
		zap.String("path", r.path),
		zap.String("schedule", r.spec),
	)

	r.cron.Start()
	defer r.cron.Stop()

	select {
	case <-ctx.Done():
	case <-r.StopChan():
	}
	return nil
}

func (r *ScheduledReloader) run() {
	_ = refresh(context.Background(), r.store, r.path, r.Logger())
}
