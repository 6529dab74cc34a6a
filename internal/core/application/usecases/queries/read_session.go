package queries

import (
	"context"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/ports"
)

// NotAvailable is shown in place of a name that cannot be resolved.
const NotAvailable = "N/A"

// dataset is what a projection may need, loaded in one read session.
type dataset struct {
	clients  []*client.Client
	couriers []*courier.Courier
	orders   []*order.Order
	records  []*history.Record
}

type collections uint8

const (
	withClients collections = 1 << iota
	withCouriers
	withOrders
	withRecords
)

// readSession opens a unit of work for reading, runs fn and always rolls back.
func readSession(ctx context.Context, factory ports.UnitOfWorkFactory, fn func(ports.UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}

func loadDataset(ctx context.Context, factory ports.UnitOfWorkFactory, want collections) (dataset, error) {
	var data dataset
	err := readSession(ctx, factory, func(uow ports.UnitOfWork) error {
		var err error
		if want&withClients != 0 {
			if data.clients, err = uow.ClientRepository().FindAll(ctx); err != nil {
				return err
			}
		}
		if want&withCouriers != 0 {
			if data.couriers, err = uow.CourierRepository().FindAll(ctx); err != nil {
				return err
			}
		}
		if want&withOrders != 0 {
			if data.orders, err = uow.OrderRepository().FindAll(ctx); err != nil {
				return err
			}
		}
		if want&withRecords != 0 {
			if data.records, err = uow.HistoryRepository().FindAll(ctx); err != nil {
				return err
			}
		}
		return nil
	})
	return data, err
}

func (d dataset) clientNames() map[string]string {
	names := make(map[string]string, len(d.clients))
	for _, c := range d.clients {
		names[c.ID()] = c.Name()
	}
	return names
}

func (d dataset) courierNames() map[string]string {
	names := make(map[string]string, len(d.couriers))
	for _, c := range d.couriers {
		names[c.ID()] = c.Name()
	}
	return names
}

func (d dataset) ordersByID() map[string]*order.Order {
	index := make(map[string]*order.Order, len(d.orders))
	for _, o := range d.orders {
		if _, seen := index[o.ID()]; !seen {
			index[o.ID()] = o
		}
	}
	return index
}

func nameOrNA(names map[string]string, id string) string {
	if name, ok := names[id]; ok && id != "" {
		return name
	}
	return NotAvailable
}
