package jobs

import (
	"context"
	"log/slog"

	"distribution/internal/core/application/usecases/queries"
	"distribution/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// LowStockAlertJob periodically sweeps the whole stock ledger and logs every
// record below the alert threshold.
//
// The job runs with an unrestricted scope: alerting is an operational concern
// spanning all companies and branches. Alerts are emitted as structured log
// records; whatever ships them onward (pager, mail, dashboard) consumes the
// log stream, not this process.
type LowStockAlertJob struct {
	handler queries.GetLowStockQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewLowStockAlertJob creates the hourly low-stock sweep.
func NewLowStockAlertJob(handler queries.GetLowStockQueryHandler, logger *slog.Logger) *LowStockAlertJob {
	return &LowStockAlertJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "low_stock_alert_job"),
	}
}

// Start schedules the sweep to run at the top of every hour.
func (j *LowStockAlertJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock alert job started (running hourly)")
	return nil
}

// Stop stops the sweep.
func (j *LowStockAlertJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock alert job stopped")
}

func (j *LowStockAlertJob) run() {
	ctx := context.Background()

	alerts, err := j.handler.Handle(ctx, queries.NewGetLowStockQuery(kernel.NewUnrestrictedScope()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock sweep failed", "error", err)
		return
	}

	for _, alert := range alerts {
		j.logger.WarnContext(ctx, "Low stock alert",
			"branch_code", alert.BranchCode,
			"part_id", alert.PartID.String(),
			"total_stock", alert.TotalStock,
			"max_quantity", alert.MaxQuantity,
			"stock_percentage", alert.StockPercentage,
			"urgency", string(alert.Urgency),
			"rack_location", alert.RackLocation,
		)
	}

	j.logger.InfoContext(ctx, "Low stock sweep completed", "alert_count", len(alerts))
}
