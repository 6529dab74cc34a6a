package jobs

import (
	"context"
	"log/slog"

	"courierdesk/internal/core/application/usecases/queries"
	"courierdesk/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DashboardHandler computes the dashboard KPIs.
type DashboardHandler interface {
	Handle(ctx context.Context, query queries.GetDashboardQuery) (services.Dashboard, error)
}

// KPIReportJob logs the dashboard KPIs on a schedule.
type KPIReportJob struct {
	handler  DashboardHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewKPIReportJob(handler DashboardHandler, schedule string, logger *slog.Logger) *KPIReportJob {
	return &KPIReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "kpi_report_job"),
	}
}

func (j *KPIReportJob) Name() string { return "kpi report" }

// Run computes and logs the KPIs once.
func (j *KPIReportJob) Run(ctx context.Context) error {
	dashboard, err := j.handler.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "KPI report failed", "error", err)
		return err
	}

	j.logger.InfoContext(ctx, "KPI report",
		"on_time_pct", dashboard.OnTimePercentage,
		"avg_delivery_min", dashboard.AverageDeliveryMinutes,
		"delivered_today", dashboard.DeliveredToday,
		"in_progress", dashboard.InProgressOrders,
		"active_couriers", dashboard.ActiveCouriers,
	)
	return nil
}

func (j *KPIReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		_ = j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "KPI report job started", "schedule", j.schedule)
	return nil
}

func (j *KPIReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "KPI report job stopped")
}
