package queries

import (
	"context"

	"courierdesk/internal/core/domain/services"
	"courierdesk/internal/core/ports"
)

// GetDashboardQueryHandler computes the dashboard KPIs. "Today" comes from the
// injected clock.
type GetDashboardQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	stats      services.Statistics
	clock      ports.Clock
}

func NewGetDashboardQueryHandler(
	uowFactory ports.UnitOfWorkFactory,
	stats services.Statistics,
	clock ports.Clock,
) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{uowFactory: uowFactory, stats: stats, clock: clock}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (services.Dashboard, error) {
	if err := query.Validate(); err != nil {
		return services.Dashboard{}, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withCouriers|withOrders|withRecords)
	if err != nil {
		return services.Dashboard{}, err
	}

	return h.stats.Dashboard(data.statistics(), h.clock.Now()), nil
}

// GetTopCouriersQueryHandler ranks couriers, best first, at most
// services.TopCouriersLimit rows.
type GetTopCouriersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	stats      services.Statistics
}

func NewGetTopCouriersQueryHandler(uowFactory ports.UnitOfWorkFactory, stats services.Statistics) GetTopCouriersQueryHandler {
	return GetTopCouriersQueryHandler{uowFactory: uowFactory, stats: stats}
}

func (h GetTopCouriersQueryHandler) Handle(
	ctx context.Context,
	query GetTopCouriersQuery,
) ([]services.CourierPerformance, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withCouriers|withOrders|withRecords)
	if err != nil {
		return nil, err
	}

	return h.stats.TopCouriers(data.statistics()), nil
}

// GetDailySeriesQueryHandler returns the per-day series in chronological order.
type GetDailySeriesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	stats      services.Statistics
}

func NewGetDailySeriesQueryHandler(uowFactory ports.UnitOfWorkFactory, stats services.Statistics) GetDailySeriesQueryHandler {
	return GetDailySeriesQueryHandler{uowFactory: uowFactory, stats: stats}
}

func (h GetDailySeriesQueryHandler) Handle(ctx context.Context, query GetDailySeriesQuery) ([]services.DailyPoint, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withOrders|withRecords)
	if err != nil {
		return nil, err
	}

	return h.stats.DailySeries(data.orders, data.records), nil
}

func (d dataset) statistics() services.Dataset {
	return services.Dataset{
		Orders:   d.orders,
		Records:  d.records,
		Couriers: d.couriers,
	}
}
