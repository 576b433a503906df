// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3, managed through JobManager.
package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"

	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/application/usecases/queries"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"
)

// lowStockSchedule runs at the top of every hour.
const lowStockSchedule = "0 0 * * * *"

// LowStockAlertJob periodically scans for stock-tracked products under their
// reorder threshold and pushes a summary notification.
type LowStockAlertJob struct {
	handler  queries.GetLowStockProductsQueryHandler
	notifier ports.Notifier
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLowStockAlertJob creates the hourly low-stock scan.
func NewLowStockAlertJob(
	handler queries.GetLowStockProductsQueryHandler,
	notifier ports.Notifier,
	logger *slog.Logger,
) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler:  handler,
		notifier: notifier,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_alert_job"),
	}
}

// Start schedules the job.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc(lowStockSchedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running hourly)")
	return nil
}

// Stop stops the job.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}

func (j *LowStockAlertJob) run() {
	ctx := context.Background()

	products, err := j.handler.Handle(ctx, queries.NewGetLowStockProductsQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock scan failed", "error", err)
		return
	}

	if len(products) == 0 {
		return
	}

	body := fmt.Sprintf("%d productos por debajo del stock mínimo", len(products))
	if len(products) == 1 {
		body = fmt.Sprintf("%s por debajo del stock mínimo (%d de %d)",
			products[0].Name, products[0].CurrentStock, products[0].MinStock)
	}

	j.notifier.Notify(ctx, "Stock bajo", body, "stock")
	j.logger.InfoContext(ctx, "Low stock alert sent", "products", len(products))
}
