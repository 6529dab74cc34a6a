package cli

import (
	"context"

	"courierdesk/internal/core/application/usecases/queries"
)

func (a *App) historyList(ctx context.Context, args []string) error {
	if err := exactArgs("history list", args); err != nil {
		return err
	}

	rows, err := a.handlers.ListHistory.Handle(ctx, queries.NewListHistoryQuery())
	if err != nil {
		return err
	}
	return a.renderHistory(rows)
}

func (a *App) renderHistory(rows []queries.HistoryRow) error {
	t := newTable(a.out, "ID", "ORDER", "COURIER", "CLIENT", "COMBO", "PAYMENT", "TOTAL", "OUTCOME", "AT", "LOCATION")
	for _, r := range rows {
		t.row(
			r.ID,
			r.OrderID,
			r.CourierName,
			r.ClientName,
			r.Combo,
			r.PaymentMethod,
			money(r.Total),
			r.Outcome,
			timestamp(r.OccurredAt),
			orDash(r.Location),
		)
	}
	return t.flush()
}

func (a *App) statsDashboard(ctx context.Context, args []string) error {
	if err := exactArgs("stats dashboard", args); err != nil {
		return err
	}

	d, err := a.handlers.Dashboard.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}

	t := newTable(a.out, "KPI", "VALUE")
	t.row("On-time deliveries", percent(d.OnTimePercentage))
	t.row("Average delivery time", minutes(d.AverageDeliveryMinutes))
	t.row("Delivered today", itoa(d.DeliveredToday))
	t.row("Orders in progress", itoa(d.InProgressOrders))
	t.row("Active couriers", itoa(d.ActiveCouriers))
	return t.flush()
}

func (a *App) statsTop(ctx context.Context, args []string) error {
	if err := exactArgs("stats top", args); err != nil {
		return err
	}

	rows, err := a.handlers.TopCouriers.Handle(ctx, queries.NewGetTopCouriersQuery())
	if err != nil {
		return err
	}

	t := newTable(a.out, "#", "COURIER", "NAME", "DELIVERIES", "ON TIME", "ON TIME %")
	for i, r := range rows {
		t.row(itoa(i+1), r.CourierID, r.Name, itoa(r.Total), itoa(r.OnTime), percent(r.OnTimePercentage))
	}
	return t.flush()
}

func (a *App) statsDaily(ctx context.Context, args []string) error {
	if err := exactArgs("stats daily", args); err != nil {
		return err
	}

	points, err := a.handlers.DailySeries.Handle(ctx, queries.NewGetDailySeriesQuery())
	if err != nil {
		return err
	}

	t := newTable(a.out, "DAY", "ORDERS", "AVG DELIVERY")
	for _, p := range points {
		t.row(p.Label, itoa(p.OrdersCreated), minutes(p.AverageDeliveryMinutes))
	}
	return t.flush()
}
