package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OrderStatsJob periodically logs a snapshot of order counts per status.
// Runs every minute so operators can follow order flow without querying
// the store by hand.
type OrderStatsJob struct {
	orders ports.OrderRepository
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOrderStatsJob creates a job that reports order statistics.
func NewOrderStatsJob(orders ports.OrderRepository, logger *slog.Logger) *OrderStatsJob {
	return &OrderStatsJob{
		orders: orders,
		cron:   cron.New(),
		logger: logger.With("component", "order_stats_job"),
	}
}

// Start begins the stats job to run every minute.
func (j *OrderStatsJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Order stats job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order stats job started (running every minute)")
	return nil
}

// Stop stops the stats job.
func (j *OrderStatsJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order stats job stopped")
}

func (j *OrderStatsJob) report(ctx context.Context) error {
	all, err := j.orders.GetAll(ctx)
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, o := range all {
		counts[o.Status().String()]++
	}

	j.logger.InfoContext(ctx, "Order stats snapshot",
		"total", len(all),
		"byStatus", counts,
	)
	return nil
}
