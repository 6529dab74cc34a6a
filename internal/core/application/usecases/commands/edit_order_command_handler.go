package commands

import (
	"context"
)

// EditOrderCommandHandler applies operator edits to an open order.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{uowFactory: uowFactory}
}

// Handle applies every requested change or none of them.
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	if address, ok := cmd.Address(); ok {
		if err = o.ChangeDeliveryAddress(address); err != nil {
			return err
		}
	}
	if fee, ok := cmd.DeliveryFee(); ok {
		if err = o.ChangeDeliveryFee(fee); err != nil {
			return err
		}
	}
	if combo, ok := cmd.Combo(); ok {
		if err = o.ChangeCombo(combo); err != nil {
			return err
		}
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
