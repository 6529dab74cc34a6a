package commands

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand changes the address, fee and/or combo of an open order.
// Empty inputs leave the matching field untouched; at least one change is
// required. The order total is never recomputed.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     string
	address     *string
	deliveryFee *float64
	combo       *order.Combo

	guard guard.ConstructorGuard
}

// NewEditOrderCommand parses operator input. rawFee and rawCombo are the same
// strings accepted at creation ("2.50", "PARA4").
func NewEditOrderCommand(orderID, address, rawFee, rawCombo string) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		orderID: strings.TrimSpace(orderID),
		guard:   guard.NewConstructorGuard(),
	}

	if a := strings.TrimSpace(address); a != "" {
		cmd.address = &a
	}

	var feeErr, comboErr error
	if strings.TrimSpace(rawFee) != "" {
		fee, err := parseAmount("delivery fee", rawFee)
		feeErr = err
		cmd.deliveryFee = &fee
	}
	if strings.TrimSpace(rawCombo) != "" {
		combo, err := order.ParseCombo(rawCombo)
		if err == nil {
			err = combo.Validate()
		}
		comboErr = err
		cmd.combo = &combo
	}

	var emptyErr error
	if cmd.address == nil && cmd.deliveryFee == nil && cmd.combo == nil {
		emptyErr = errs.NewValueIsRequiredErrorWithCause("changes", errors.New("nothing to edit"))
	}

	if err := errors.Join(kernel.ValidateID("order id", cmd.orderID), feeErr, comboErr, emptyErr); err != nil {
		return EditOrderCommand{}, err
	}
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() string { return c.orderID }

// Address returns the new address and whether it was given.
func (c EditOrderCommand) Address() (string, bool) {
	if c.address == nil {
		return "", false
	}
	return *c.address, true
}

// DeliveryFee returns the new fee and whether it was given.
func (c EditOrderCommand) DeliveryFee() (float64, bool) {
	if c.deliveryFee == nil {
		return 0, false
	}
	return *c.deliveryFee, true
}

// Combo returns the new combo and whether it was given.
func (c EditOrderCommand) Combo() (order.Combo, bool) {
	if c.combo == nil {
		return order.NoCombo, false
	}
	return *c.combo, true
}
