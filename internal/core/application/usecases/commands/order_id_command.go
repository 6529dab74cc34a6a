package commands

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var (
	ErrDispatchOrderCommandIsNotConstructed = errors.New(
		"DispatchOrderCommand must be created via NewDispatchOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
)

// orderIDCommand is the shared body of commands that only name an order.
type orderIDCommand struct {
	orderID string
	guard   guard.ConstructorGuard
}

func newOrderIDCommand(orderID string) (orderIDCommand, error) {
	orderID = strings.TrimSpace(orderID)
	if err := kernel.ValidateID("order id", orderID); err != nil {
		return orderIDCommand{}, err
	}
	return orderIDCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c orderIDCommand) OrderID() string { return c.orderID }

// DispatchOrderCommand marks a Pending order as picked up (EnRoute).
type DispatchOrderCommand struct{ orderIDCommand }

func NewDispatchOrderCommand(orderID string) (DispatchOrderCommand, error) {
	base, err := newOrderIDCommand(orderID)
	if err != nil {
		return DispatchOrderCommand{}, err
	}
	return DispatchOrderCommand{base}, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}

// CancelOrderCommand closes an open order as Cancelled.
type CancelOrderCommand struct{ orderIDCommand }

func NewCancelOrderCommand(orderID string) (CancelOrderCommand, error) {
	base, err := newOrderIDCommand(orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{base}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// DeliverOrderCommand closes an open order as Delivered.
type DeliverOrderCommand struct{ orderIDCommand }

func NewDeliverOrderCommand(orderID string) (DeliverOrderCommand, error) {
	base, err := newOrderIDCommand(orderID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{base}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}
