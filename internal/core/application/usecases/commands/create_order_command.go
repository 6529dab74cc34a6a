package commands

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new delivery order.
// Amounts arrive as operator input and are parsed here; the order ID is
// generated here so the caller can report it once the handler succeeds.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("12345678", order.ComboForFour, order.Cash, "", true, "2", "20")
//	if err != nil {
//	    return err // human-readable validation message
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
//	fmt.Printf("Order %s created", cmd.OrderID())
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	clientID    string
	courierID   string
	combo       order.Combo
	payment     order.Payment
	deliveryFee float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates operator input for a new order.
//
// courierID is optional. change is read only when requiresChange is set.
func NewCreateOrderCommand(
	clientID string,
	combo order.Combo,
	method order.PaymentMethod,
	courierID string,
	requiresChange bool,
	deliveryFee string,
	change string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID:   kernel.NewOrderID(),
		courierID: strings.TrimSpace(courierID),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientID(clientID),
		cmd.setCombo(combo),
		cmd.setPayment(method, requiresChange, change),
		cmd.setDeliveryFee(deliveryFee),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string { return c.orderID }

func (c CreateOrderCommand) ClientID() string { return c.clientID }

// CourierID returns the courier to assign at creation, or "".
func (c CreateOrderCommand) CourierID() string { return c.courierID }

func (c CreateOrderCommand) Combo() order.Combo { return c.combo }

func (c CreateOrderCommand) Payment() order.Payment { return c.payment }

func (c CreateOrderCommand) DeliveryFee() float64 { return c.deliveryFee }

func (c *CreateOrderCommand) setClientID(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return errs.NewValueIsRequiredErrorWithCause("client", errors.New("select a client"))
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setCombo(combo order.Combo) error {
	if err := combo.Validate(); err != nil {
		return err
	}
	c.combo = combo
	return nil
}

func (c *CreateOrderCommand) setPayment(method order.PaymentMethod, requiresChange bool, rawChange string) error {
	var change float64
	if requiresChange {
		parsed, err := parseAmount("change", rawChange)
		if err != nil {
			return errors.Join(method.Validate(), err)
		}
		change = parsed
	}

	payment, err := order.NewPayment(method, requiresChange, change)
	if err != nil {
		return err
	}
	c.payment = payment
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(raw string) error {
	fee, err := parseAmount("delivery fee", raw)
	if err != nil {
		return err
	}
	c.deliveryFee = fee
	return nil
}
