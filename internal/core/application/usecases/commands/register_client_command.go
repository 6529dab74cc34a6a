package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/client"
	"courierdesk/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrUpdateClientCommandIsNotConstructed = errors.New(
		"UpdateClientCommand must be created via NewUpdateClientCommand constructor",
	)
)

// RegisterClientCommand carries a validated new client.
type RegisterClientCommand struct {
	client *client.Client
	guard  guard.ConstructorGuard
}

// NewRegisterClientCommand validates the client's fields.
func NewRegisterClientCommand(name, nationalID, phone, address string) (RegisterClientCommand, error) {
	c, err := client.NewClient(nationalID, name, phone, address)
	if err != nil {
		return RegisterClientCommand{}, err
	}
	return RegisterClientCommand{client: c, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// Client returns the client to register.
func (c RegisterClientCommand) Client() *client.Client { return c.client }

// UpdateClientCommand replaces a client's name, phone and address.
type UpdateClientCommand struct {
	nationalID string
	name       string
	phone      string
	address    string
	guard      guard.ConstructorGuard
}

// NewUpdateClientCommand validates the new values up front so that a bad
// request never opens a transaction.
func NewUpdateClientCommand(nationalID, name, phone, address string) (UpdateClientCommand, error) {
	probe, err := client.NewClient(nationalID, name, phone, address)
	if err != nil {
		return UpdateClientCommand{}, err
	}
	return UpdateClientCommand{
		nationalID: probe.ID(),
		name:       probe.Name(),
		phone:      probe.Phone(),
		address:    probe.Address(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateClientCommand) Validate() error {
	return c.guard.Validate(ErrUpdateClientCommandIsNotConstructed)
}

func (c UpdateClientCommand) NationalID() string { return c.nationalID }

func (c UpdateClientCommand) Name() string { return c.name }

func (c UpdateClientCommand) Phone() string { return c.phone }

func (c UpdateClientCommand) Address() string { return c.address }
