package commands

import (
	"context"

	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// The new order copies the client's address, starts Pending and is stamped
// with the current time.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the order creation command. The client, and the courier
// when one is given, must exist. Nothing is written on failure.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.ClientRepository().FindByID(ctx, cmd.ClientID())
	if err != nil {
		return err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		c.ID(),
		c.Address(),
		cmd.Combo(),
		cmd.Payment(),
		cmd.DeliveryFee(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if cmd.CourierID() != "" {
		if _, err = uow.CourierRepository().FindByID(ctx, cmd.CourierID()); err != nil {
			return err
		}
		if err = o.AssignCourier(cmd.CourierID()); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
