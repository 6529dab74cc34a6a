package commands

import (
	"context"
)

// DispatchOrderCommandHandler moves a Pending order to EnRoute.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDispatchOrderCommandHandler(uowFactory OrderUoWFactory) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{uowFactory: uowFactory}
}

func (h *DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
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

	if err = o.Dispatch(); err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
