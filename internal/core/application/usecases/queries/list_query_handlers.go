package queries

import (
	"context"
	"time"

	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/ports"
)

// ClientRow is one line of the client table.
type ClientRow struct {
	NationalID string
	Name       string
	Phone      string
	Address    string
}

// CourierRow is one line of the courier table.
type CourierRow struct {
	NationalID string
	Name       string
	Phone      string
	Available  bool
}

// OrderRow is one line of an order table. Names that cannot be resolved are
// NotAvailable; Combo, PaymentMethod and Status hold display labels.
type OrderRow struct {
	ID              string
	ClientID        string
	ClientName      string
	CourierID       string
	CourierName     string
	DeliveryAddress string
	Combo           string
	PaymentMethod   string
	RequiresChange  bool
	Change          float64
	DeliveryFee     float64
	Total           float64
	Status          string
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

// HistoryRow is one line of the history table. When the order is gone the
// order-derived columns fall back to NotAvailable and zero.
type HistoryRow struct {
	ID            string
	OrderID       string
	CourierID     string
	CourierName   string
	ClientName    string
	Combo         string
	PaymentMethod string
	Total         float64
	Outcome       string
	OccurredAt    time.Time
	Location      string
}

// ListClientsQueryHandler projects the client table.
type ListClientsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListClientsQueryHandler(uowFactory ports.UnitOfWorkFactory) ListClientsQueryHandler {
	return ListClientsQueryHandler{uowFactory: uowFactory}
}

func (h ListClientsQueryHandler) Handle(ctx context.Context, query ListClientsQuery) ([]ClientRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withClients)
	if err != nil {
		return nil, err
	}

	rows := make([]ClientRow, 0, len(data.clients))
	for _, c := range data.clients {
		rows = append(rows, ClientRow{
			NationalID: c.ID(),
			Name:       c.Name(),
			Phone:      c.Phone(),
			Address:    c.Address(),
		})
	}
	return rows, nil
}

// ListCouriersQueryHandler projects the courier table. Passwords are not part
// of the projection.
type ListCouriersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListCouriersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{uowFactory: uowFactory}
}

func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withCouriers)
	if err != nil {
		return nil, err
	}

	rows := make([]CourierRow, 0, len(data.couriers))
	for _, c := range data.couriers {
		rows = append(rows, CourierRow{
			NationalID: c.ID(),
			Name:       c.Name(),
			Phone:      c.Phone(),
			Available:  c.IsAvailable(),
		})
	}
	return rows, nil
}

// ListOrdersQueryHandler projects the order table.
type ListOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withClients|withCouriers|withOrders)
	if err != nil {
		return nil, err
	}

	return orderRows(data, func(*order.Order) bool { return true }), nil
}

// ListCourierActiveOrdersQueryHandler projects the open orders of one courier.
type ListCourierActiveOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListCourierActiveOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) ListCourierActiveOrdersQueryHandler {
	return ListCourierActiveOrdersQueryHandler{uowFactory: uowFactory}
}

func (h ListCourierActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCourierActiveOrdersQuery,
) ([]OrderRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withClients|withCouriers|withOrders)
	if err != nil {
		return nil, err
	}

	return orderRows(data, func(o *order.Order) bool {
		return o.CourierID() == query.CourierID() && o.Status().IsInProgress()
	}), nil
}

func orderRows(data dataset, keep func(*order.Order) bool) []OrderRow {
	clients := data.clientNames()
	couriers := data.courierNames()

	rows := make([]OrderRow, 0, len(data.orders))
	for _, o := range data.orders {
		if !keep(o) {
			continue
		}
		payment := o.Payment()
		rows = append(rows, OrderRow{
			ID:              o.ID(),
			ClientID:        o.ClientID(),
			ClientName:      nameOrNA(clients, o.ClientID()),
			CourierID:       o.CourierID(),
			CourierName:     nameOrNA(couriers, o.CourierID()),
			DeliveryAddress: o.DeliveryAddress(),
			Combo:           o.Combo().String(),
			PaymentMethod:   payment.Method().String(),
			RequiresChange:  payment.RequiresChange(),
			Change:          payment.Change(),
			DeliveryFee:     o.DeliveryFee(),
			Total:           o.Total(),
			Status:          o.Status().Label(),
			CreatedAt:       o.CreatedAt(),
			DeliveredAt:     o.DeliveredAt(),
		})
	}
	return rows
}

// ListHistoryQueryHandler projects the history ledger.
type ListHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory) ListHistoryQueryHandler {
	return ListHistoryQueryHandler{uowFactory: uowFactory}
}

func (h ListHistoryQueryHandler) Handle(ctx context.Context, query ListHistoryQuery) ([]HistoryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withClients|withCouriers|withOrders|withRecords)
	if err != nil {
		return nil, err
	}

	return historyRows(data, func(*history.Record) bool { return true }), nil
}

// ListCourierDeliveriesQueryHandler projects the delivered history of one courier.
type ListCourierDeliveriesQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

func NewListCourierDeliveriesQueryHandler(uowFactory ports.UnitOfWorkFactory) ListCourierDeliveriesQueryHandler {
	return ListCourierDeliveriesQueryHandler{uowFactory: uowFactory}
}

func (h ListCourierDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query ListCourierDeliveriesQuery,
) ([]HistoryRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	data, err := loadDataset(ctx, h.uowFactory, withClients|withCouriers|withOrders|withRecords)
	if err != nil {
		return nil, err
	}

	return historyRows(data, func(r *history.Record) bool {
		return r.CourierID() == query.CourierID() && r.Outcome() == history.Delivered
	}), nil
}

func historyRows(data dataset, keep func(*history.Record) bool) []HistoryRow {
	clients := data.clientNames()
	couriers := data.courierNames()
	orders := data.ordersByID()

	rows := make([]HistoryRow, 0, len(data.records))
	for _, r := range data.records {
		if !keep(r) {
			continue
		}
		row := HistoryRow{
			ID:            r.ID(),
			OrderID:       r.OrderID(),
			CourierID:     r.CourierID(),
			CourierName:   nameOrNA(couriers, r.CourierID()),
			ClientName:    NotAvailable,
			Combo:         NotAvailable,
			PaymentMethod: NotAvailable,
			Outcome:       r.Outcome().Label(),
			OccurredAt:    r.OccurredAt(),
			Location:      r.Location(),
		}
		if o, ok := orders[r.OrderID()]; ok {
			row.ClientName = nameOrNA(clients, o.ClientID())
			row.Combo = o.Combo().String()
			row.PaymentMethod = o.Payment().Method().String()
			row.Total = o.Total()
		}
		rows = append(rows, row)
	}
	return rows
}
