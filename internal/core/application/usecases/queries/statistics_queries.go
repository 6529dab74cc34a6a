package queries

import (
	"errors"

	"courierdesk/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
	ErrGetTopCouriersQueryIsNotConstructed = errors.New(
		"GetTopCouriersQuery must be created via NewGetTopCouriersQuery constructor",
	)
	ErrGetDailySeriesQueryIsNotConstructed = errors.New(
		"GetDailySeriesQuery must be created via NewGetDailySeriesQuery constructor",
	)
)

// GetDashboardQuery retrieves the KPI scalars of the administrator dashboard.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(uowFactory, services.NewStatistics(time.Local), clock)
//	kpi, err := handler.Handle(ctx, NewGetDashboardQuery())
//	if err != nil {
//	    return fmt.Errorf("failed to compute dashboard: %w", err)
//	}
//	fmt.Printf("OTD %.1f%%, %d delivered today\n", kpi.OnTimePercentage, kpi.DeliveredToday)
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetTopCouriersQuery retrieves the courier ranking by on-time percentage.
type GetTopCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTopCouriersQuery() GetTopCouriersQuery {
	return GetTopCouriersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTopCouriersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopCouriersQueryIsNotConstructed)
}

// GetDailySeriesQuery retrieves orders created and average delivery time per day.
type GetDailySeriesQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDailySeriesQuery() GetDailySeriesQuery {
	return GetDailySeriesQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDailySeriesQuery) Validate() error {
	return q.guard.Validate(ErrGetDailySeriesQueryIsNotConstructed)
}
