// Package jobs holds scheduled background work. The dashboard refresher
// recomputes statistics on an interval so percentage changes keep tracking
// the last computation even when nobody is watching the dashboard.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"adboard/internal/core/port"
)

// Refresher periodically recomputes dashboard statistics.
type Refresher struct {
	stats    port.StatsUseCase
	logger   *slog.Logger
	interval time.Duration
	cron     *cron.Cron
}

// NewRefresher creates a Refresher that recomputes stats every interval.
func NewRefresher(stats port.StatsUseCase, logger *slog.Logger, interval time.Duration) *Refresher {
	return &Refresher{stats: stats, logger: logger, interval: interval}
}

// Start schedules the refresh job. It must be paired with Stop to avoid
// leaking the recurring task.
func (r *Refresher) Start() error {
	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", r.interval), r.run); err != nil {
		return err
	}
	c.Start()
	r.cron = c
	r.logger.Info("stats refresher started", slog.Duration("interval", r.interval))
	return nil
}

// Stop cancels the schedule and waits for a running refresh to finish.
func (r *Refresher) Stop() {
	if r.cron == nil {
		return
	}
	<-r.cron.Stop().Done()
	r.logger.Info("stats refresher stopped")
}

func (r *Refresher) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := r.stats.Overview(ctx); err != nil {
		r.logger.Error("stats refresh failed", slog.Any("error", err))
	}
}
