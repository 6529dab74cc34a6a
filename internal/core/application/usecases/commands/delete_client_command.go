package commands

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/guard"
)

var ErrDeleteClientCommandIsNotConstructed = errors.New(
	"DeleteClientCommand must be created via NewDeleteClientCommand constructor",
)

// DeleteClientCommand removes a client together with its orders and their history.
type DeleteClientCommand struct {
	nationalID string
	guard      guard.ConstructorGuard
}

func NewDeleteClientCommand(nationalID string) (DeleteClientCommand, error) {
	nationalID = strings.TrimSpace(nationalID)
	if err := kernel.ValidateID("client id", nationalID); err != nil {
		return DeleteClientCommand{}, err
	}
	return DeleteClientCommand{nationalID: nationalID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteClientCommand) Validate() error {
	return c.guard.Validate(ErrDeleteClientCommandIsNotConstructed)
}

func (c DeleteClientCommand) NationalID() string { return c.nationalID }
