package jobs

import (
	"context"
	"log/slog"

	"shop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// StockReportJob periodically reports catalog products that are out of
// stock. Runs every five minutes.
type StockReportJob struct {
	products ports.ProductRepository
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewStockReportJob creates a job that reports out-of-stock products.
func NewStockReportJob(products ports.ProductRepository, logger *slog.Logger) *StockReportJob {
	return &StockReportJob{
		products: products,
		cron:     cron.New(),
		logger:   logger.With("component", "stock_report_job"),
	}
}

// Start begins the stock report job to run every five minutes.
func (j *StockReportJob) Start() error {
	_, err := j.cron.AddFunc("*/5 * * * *", func() {
		ctx := context.Background()
		if err := j.report(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Stock report job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stock report job started (running every five minutes)")
	return nil
}

// Stop stops the stock report job.
func (j *StockReportJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stock report job stopped")
}

func (j *StockReportJob) report(ctx context.Context) error {
	all, err := j.products.GetAll(ctx)
	if err != nil {
		return err
	}

	var outOfStock []string
	for _, p := range all {
		if !p.InStock() {
			outOfStock = append(outOfStock, p.Name())
		}
	}

	if len(outOfStock) == 0 {
		return nil
	}

	j.logger.InfoContext(ctx, "Products out of stock",
		"count", len(outOfStock),
		"products", outOfStock,
	)
	return nil
}
