package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// OrderRefreshJob polls the selected session's order lines on a fixed
// interval. Cycles without a selection do nothing; failed cycles are
// logged and skipped.
type OrderRefreshJob struct {
	monitor  *Monitor
	cron     *cron.Cron
	interval int
	logger   *slog.Logger
}

// NewOrderRefreshJob creates an order polling job with the given interval
// in seconds.
func NewOrderRefreshJob(monitor *Monitor, intervalSeconds int, logger *slog.Logger) *OrderRefreshJob {
	return &OrderRefreshJob{
		monitor:  monitor,
		cron:     cron.New(),
		interval: intervalSeconds,
		logger:   logger.With("component", "order_refresh_job"),
	}
}

// Start begins polling the selected session's orders.
func (j *OrderRefreshJob) Start() error {
	_, err := j.cron.AddFunc(fmt.Sprintf("@every %ds", j.interval), func() {
		ctx := context.Background()
		if err := j.monitor.RefreshOrders(ctx); err != nil {
			j.logger.WarnContext(ctx, "Order refresh cycle skipped", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order refresh job started", "interval_seconds", j.interval)
	return nil
}

// Stop stops the order polling job.
func (j *OrderRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order refresh job stopped")
}
