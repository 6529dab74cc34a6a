package commands

import (
	"context"
	"time"

	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/ports"
)

// closeFunc applies a terminal transition and returns the ledger entry for it.
type closeFunc func(o *order.Order, recordID string, at time.Time) (*history.Record, error)

// closeOrder runs a terminal transition in one unit of work: the order is
// saved and its history record appended, or neither is.
func closeOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	clock ports.Clock,
	orderID string,
	transition closeFunc,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return err
	}

	record, err := transition(o, kernel.NewHistoryID(), clock.Now())
	if err != nil {
		return err
	}

	if err = orderRepo.Save(ctx, o); err != nil {
		return err
	}

	if err = uow.HistoryRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// CancelOrderCommandHandler cancels an open order and records the event.
//
// Example:
//
//	cmd, _ := NewCancelOrderCommand("PED-6f1c...")
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrOrderAlreadyFinalized) {
//	    // already Delivered or Cancelled, nothing changed
//	}
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return closeOrder(ctx, h.uowFactory, h.clock, cmd.OrderID(), (*order.Order).Cancel)
}

// DeliverOrderCommandHandler marks an open order as delivered and records the event.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return closeOrder(ctx, h.uowFactory, h.clock, cmd.OrderID(), (*order.Order).Deliver)
}
