package jobs

import (
	"fmt"
	"log/slog"

	"shop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderStatsJob  *OrderStatsJob
	stockReportJob *StockReportJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes repositories as dependencies to wire up the job execution.
func NewJobManager(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderStatsJob:  NewOrderStatsJob(orders, logger),
		stockReportJob: NewStockReportJob(products, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderStatsJob.Start(); err != nil {
		return fmt.Errorf("failed to start order stats job: %w", err)
	}

	if err := jm.stockReportJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orderStatsJob.Stop()
		return fmt.Errorf("failed to start stock report job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stockReportJob.Stop()
	jm.orderStatsJob.Stop()
}
