package monitor

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates the two polling jobs of the monitor.
// Provides a unified interface to start and stop both loops.
type JobManager struct {
	sessionRefreshJob *SessionRefreshJob
	orderRefreshJob   *OrderRefreshJob
}

// NewJobManager creates a manager over both polling jobs.
func NewJobManager(
	monitor *Monitor,
	sessionIntervalSeconds int,
	orderIntervalSeconds int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		sessionRefreshJob: NewSessionRefreshJob(monitor, sessionIntervalSeconds, logger),
		orderRefreshJob:   NewOrderRefreshJob(monitor, orderIntervalSeconds, logger),
	}
}

// StartAll starts both polling jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start session refresh job: %w", err)
	}

	if err := jm.orderRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionRefreshJob.Stop()
		return fmt.Errorf("failed to start order refresh job: %w", err)
	}

	return nil
}

// StopAll stops both polling jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderRefreshJob.Stop()
	jm.sessionRefreshJob.Stop()
}
