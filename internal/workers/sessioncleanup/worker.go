package sessioncleanup

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Worker удаляет брошенные сценарии авторизации: пользователь нажал /start,
// но так и не прислал телефон. Без чистки такие сессии живут вечно.
type Worker struct {
	sessions Sessions
	schedule string
	maxAge   time.Duration
	logger   *slog.Logger
	cron     *cron.Cron
}

// NewWorker creates a new session cleanup worker
func NewWorker(sessions Sessions, schedule string, maxAge time.Duration, logger *slog.Logger) *Worker {
	return &Worker{
		sessions: sessions,
		schedule: schedule,
		maxAge:   maxAge,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Name returns the worker name
func (w *Worker) Name() string {
	return "sessioncleanup"
}

// Start starts the session cleanup worker
func (w *Worker) Start() error {
	_, err := w.cron.AddFunc(w.schedule, func() {
		removed := w.sessions.ClearStale(w.maxAge)
		if removed > 0 {
			w.logger.Info("Stale auth sessions removed",
				"count", removed,
				"max_age", w.maxAge)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule session cleanup worker: %w", err)
	}

	w.cron.Start()
	return nil
}

// Stop stops the worker
func (w *Worker) Stop() {
	w.logger.Info("Stopping session cleanup worker")
	w.cron.Stop()
}
