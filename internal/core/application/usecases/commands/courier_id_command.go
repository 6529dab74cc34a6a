package commands

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var (
	ErrDeleteCourierCommandIsNotConstructed = errors.New(
		"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
	)
	ErrToggleCourierAvailabilityCommandIsNotConstructed = errors.New(
		"ToggleCourierAvailabilityCommand must be created via NewToggleCourierAvailabilityCommand constructor",
	)
)

type courierIDCommand struct {
	nationalID string
	guard      guard.ConstructorGuard
}

func newCourierIDCommand(nationalID string) (courierIDCommand, error) {
	nationalID = strings.TrimSpace(nationalID)
	if err := kernel.ValidateID("courier id", nationalID); err != nil {
		return courierIDCommand{}, err
	}
	return courierIDCommand{nationalID: nationalID, guard: guard.NewConstructorGuard()}, nil
}

func (c courierIDCommand) NationalID() string { return c.nationalID }

// DeleteCourierCommand removes a courier, unassigning it from its orders.
type DeleteCourierCommand struct{ courierIDCommand }

func NewDeleteCourierCommand(nationalID string) (DeleteCourierCommand, error) {
	base, err := newCourierIDCommand(nationalID)
	if err != nil {
		return DeleteCourierCommand{}, err
	}
	return DeleteCourierCommand{base}, nil
}

func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

// ToggleCourierAvailabilityCommand flips a courier's availability flag.
type ToggleCourierAvailabilityCommand struct{ courierIDCommand }

func NewToggleCourierAvailabilityCommand(nationalID string) (ToggleCourierAvailabilityCommand, error) {
	base, err := newCourierIDCommand(nationalID)
	if err != nil {
		return ToggleCourierAvailabilityCommand{}, err
	}
	return ToggleCourierAvailabilityCommand{base}, nil
}

func (c ToggleCourierAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrToggleCourierAvailabilityCommandIsNotConstructed)
}
