package commands

import (
	"errors"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/pkg/guard"
)

var ErrRegisterCourierCommandIsNotConstructed = errors.New(
	"RegisterCourierCommand must be created via NewRegisterCourierCommand constructor",
)

// RegisterCourierCommand carries a validated new courier with its generated
// password.
//
// Example:
//
//	cmd, err := NewRegisterCourierCommand("Luis Mora", "12345678", "04141234567", true)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	fmt.Printf("courier password: %s\n", cmd.Password())
type RegisterCourierCommand struct {
	courier *courier.Courier
	guard   guard.ConstructorGuard
}

// NewRegisterCourierCommand validates the courier's fields and draws its password.
func NewRegisterCourierCommand(name, nationalID, phone string, available bool) (RegisterCourierCommand, error) {
	password, err := courier.GeneratePassword()
	if err != nil {
		return RegisterCourierCommand{}, err
	}

	c, err := courier.NewCourier(nationalID, name, phone, available, password)
	if err != nil {
		return RegisterCourierCommand{}, err
	}
	return RegisterCourierCommand{courier: c, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterCourierCommand) Validate() error {
	return c.guard.Validate(ErrRegisterCourierCommandIsNotConstructed)
}

// Courier returns the courier to register.
func (c RegisterCourierCommand) Courier() *courier.Courier { return c.courier }

// Password returns the generated password to hand to the courier.
func (c RegisterCourierCommand) Password() string { return c.courier.Password() }
