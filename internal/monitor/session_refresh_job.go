package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// SessionRefreshJob polls the active-session list on a fixed interval.
// Poll failures are logged and skipped; the displayed list is never
// cleared by a failed cycle.
type SessionRefreshJob struct {
	monitor  *Monitor
	cron     *cron.Cron
	interval int
	logger   *slog.Logger
}

// NewSessionRefreshJob creates a session polling job with the given
// interval in seconds.
func NewSessionRefreshJob(monitor *Monitor, intervalSeconds int, logger *slog.Logger) *SessionRefreshJob {
	return &SessionRefreshJob{
		monitor:  monitor,
		cron:     cron.New(),
		interval: intervalSeconds,
		logger:   logger.With("component", "session_refresh_job"),
	}
}

// Start begins polling the session list.
func (j *SessionRefreshJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", j.interval), func() {
		ctx := context.Background()
		if err := j.monitor.RefreshSessions(ctx); err != nil {
			j.logger.WarnContext(ctx, "Session refresh cycle skipped", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session refresh job started", "interval_seconds", j.interval)
	return nil
}

// Stop stops the session polling job.
func (j *SessionRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Session refresh job stopped")
}
