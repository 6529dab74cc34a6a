package commands

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrAssignCourierCommandIsNotConstructed = errors.New(
	"AssignCourierCommand must be created via NewAssignCourierCommand constructor",
)

// AssignCourierCommand assigns a courier to an open order, replacing any
// previous assignment.
type AssignCourierCommand struct { //nolint:recvcheck //using for validation
	orderID   string
	courierID string

	guard guard.ConstructorGuard
}

// NewAssignCourierCommand requires both IDs to be non-blank.
func NewAssignCourierCommand(orderID, courierID string) (AssignCourierCommand, error) {
	orderID = strings.TrimSpace(orderID)
	courierID = strings.TrimSpace(courierID)

	if err := errors.Join(
		kernel.ValidateID("order id", orderID),
		kernel.ValidateID("courier id", courierID),
	); err != nil {
		return AssignCourierCommand{}, err
	}

	return AssignCourierCommand{
		orderID:   orderID,
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCourierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierCommandIsNotConstructed)
}

func (c AssignCourierCommand) OrderID() string { return c.orderID }

func (c AssignCourierCommand) CourierID() string { return c.courierID }
