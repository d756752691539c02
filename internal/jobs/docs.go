// Package jobs provides scheduled background tasks for the order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the service.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs every minute to log a snapshot of order counts per status
// 2. StockReportJob - Runs every five minutes to report catalog products that are out of stock
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required repositories
//	jobManager := jobs.NewJobManager(orderRepository, productRepository, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Both jobs log repository errors and keep running on their schedule
// - Failed job starts will stop any already running jobs
package jobs
