package commands

import (
	"context"
)

// AssignCourierCommandHandler assigns or reassigns the courier of an order.
// Reassignment does not touch the history ledger.
type AssignCourierCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAssignCourierCommandHandler(uowFactory OrderUoWFactory) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{uowFactory: uowFactory}
}

// Handle rejects missing orders, missing couriers and terminal orders.
func (h *AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByID(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = uow.CourierRepository().FindByID(ctx, cmd.CourierID()); err != nil {
		return err
	}

	if err = o.AssignCourier(cmd.CourierID()); err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
