package jsonstore

import (
	"context"
	"fmt"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/domain/model/user"
	"courierdesk/internal/pkg/errs"
)

func clientKey(c ClientDTO) string   { return c.NationalID }
func courierKey(c CourierDTO) string { return c.NationalID }
func orderKey(o OrderDTO) string     { return o.ID }
func historyKey(h HistoryDTO) string { return h.ID }
func userKey(u UserDTO) string       { return u.NationalID }

// ClientRepository implements ports.ClientRepository over the snapshot.
type ClientRepository struct {
	access snapshotAccess
}

func (r *ClientRepository) Save(ctx context.Context, c *client.Client) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := clientToDTO(c)
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Clients = upsert(s.Clients, dto, clientKey)
		return nil
	})
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]*client.Client, error) {
	var clients []*client.Client
	err := r.access.view(ctx, func(s *Snapshot) error {
		var err error
		clients, err = mapAll(s.Clients, clientFromDTO)
		return err
	})
	return clients, err
}

func (r *ClientRepository) FindByID(ctx context.Context, id string) (*client.Client, error) {
	var found *client.Client
	err := r.access.view(ctx, func(s *Snapshot) error {
		dto, ok := findFirst(s.Clients, id, clientKey)
		if !ok {
			return errs.NewObjectNotFoundError("client", id)
		}
		var err error
		found, err = mapOne(dto, clientFromDTO)
		return err
	})
	return found, err
}

func (r *ClientRepository) DeleteByID(ctx context.Context, id string) error {
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Clients = removeAll(s.Clients, id, clientKey)
		return nil
	})
}

// CourierRepository implements ports.CourierRepository over the snapshot.
type CourierRepository struct {
	access snapshotAccess
}

func (r *CourierRepository) Save(ctx context.Context, c *courier.Courier) error {
	if err := c.Validate(); err != nil {
		return err
	}
	dto := courierToDTO(c)
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Couriers = upsert(s.Couriers, dto, courierKey)
		return nil
	})
}

func (r *CourierRepository) FindAll(ctx context.Context) ([]*courier.Courier, error) {
	var couriers []*courier.Courier
	err := r.access.view(ctx, func(s *Snapshot) error {
		var err error
		couriers, err = mapAll(s.Couriers, courierFromDTO)
		return err
	})
	return couriers, err
}

func (r *CourierRepository) FindByID(ctx context.Context, id string) (*courier.Courier, error) {
	var found *courier.Courier
	err := r.access.view(ctx, func(s *Snapshot) error {
		dto, ok := findFirst(s.Couriers, id, courierKey)
		if !ok {
			return errs.NewObjectNotFoundError("courier", id)
		}
		var err error
		found, err = mapOne(dto, courierFromDTO)
		return err
	})
	return found, err
}

func (r *CourierRepository) DeleteByID(ctx context.Context, id string) error {
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Couriers = removeAll(s.Couriers, id, courierKey)
		return nil
	})
}

func (r *CourierRepository) UpdateAvailability(ctx context.Context, id string, available bool) error {
	return r.access.modify(ctx, func(s *Snapshot) error {
		updated := false
		for i := range s.Couriers {
			if s.Couriers[i].NationalID == id {
				s.Couriers[i].Available = available
				updated = true
			}
		}
		if !updated {
			return errs.NewObjectNotFoundError("courier", id)
		}
		return nil
	})
}

// OrderRepository implements ports.OrderRepository over the snapshot.
type OrderRepository struct {
	access snapshotAccess
}

func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	dto := orderToDTO(o)
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Orders = upsert(s.Orders, dto, orderKey)
		return nil
	})
}

func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Order, error) {
	var orders []*order.Order
	err := r.access.view(ctx, func(s *Snapshot) error {
		var err error
		orders, err = mapAll(s.Orders, orderFromDTO)
		return err
	})
	return orders, err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var found *order.Order
	err := r.access.view(ctx, func(s *Snapshot) error {
		dto, ok := findFirst(s.Orders, id, orderKey)
		if !ok {
			return errs.NewObjectNotFoundError("order", id)
		}
		var err error
		found, err = mapOne(dto, orderFromDTO)
		return err
	})
	return found, err
}

func (r *OrderRepository) DeleteByID(ctx context.Context, id string) error {
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Orders = removeAll(s.Orders, id, orderKey)
		return nil
	})
}

// HistoryRepository implements ports.HistoryRepository over the snapshot.
type HistoryRepository struct {
	access snapshotAccess
}

func (r *HistoryRepository) Add(ctx context.Context, rec *history.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	dto := historyToDTO(rec)
	return r.access.modify(ctx, func(s *Snapshot) error {
		if _, exists := findFirst(s.History, dto.ID, historyKey); exists {
			return fmt.Errorf("%w: %s", history.ErrRecordAlreadyExists, dto.ID)
		}
		s.History = append(s.History, dto)
		return nil
	})
}

func (r *HistoryRepository) FindAll(ctx context.Context) ([]*history.Record, error) {
	var records []*history.Record
	err := r.access.view(ctx, func(s *Snapshot) error {
		var err error
		records, err = mapAll(s.History, historyFromDTO)
		return err
	})
	return records, err
}

func (r *HistoryRepository) FindByID(ctx context.Context, id string) (*history.Record, error) {
	var found *history.Record
	err := r.access.view(ctx, func(s *Snapshot) error {
		dto, ok := findFirst(s.History, id, historyKey)
		if !ok {
			return errs.NewObjectNotFoundError("history record", id)
		}
		var err error
		found, err = mapOne(dto, historyFromDTO)
		return err
	})
	return found, err
}

func (r *HistoryRepository) DeleteByID(ctx context.Context, id string) error {
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.History = removeAll(s.History, id, historyKey)
		return nil
	})
}

// UserRepository implements ports.UserRepository over the snapshot.
type UserRepository struct {
	access snapshotAccess
}

func (r *UserRepository) Save(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	dto := userToDTO(u)
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Users = upsert(s.Users, dto, userKey)
		return nil
	})
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	var users []*user.User
	err := r.access.view(ctx, func(s *Snapshot) error {
		var err error
		users, err = mapAll(s.Users, userFromDTO)
		return err
	})
	return users, err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*user.User, error) {
	var found *user.User
	err := r.access.view(ctx, func(s *Snapshot) error {
		dto, ok := findFirst(s.Users, id, userKey)
		if !ok {
			return errs.NewObjectNotFoundError("user", id)
		}
		var err error
		found, err = mapOne(dto, userFromDTO)
		return err
	})
	return found, err
}

func (r *UserRepository) DeleteByID(ctx context.Context, id string) error {
	return r.access.modify(ctx, func(s *Snapshot) error {
		s.Users = removeAll(s.Users, id, userKey)
		return nil
	})
}
