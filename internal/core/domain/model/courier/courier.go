package courier

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
	// ErrCourierAlreadyExists is returned when registering a national ID that is already taken.
	ErrCourierAlreadyExists = errors.New("courier already exists")
	// ErrPasswordIsRequired is returned when a courier is built without a password.
	ErrPasswordIsRequired = errs.NewValueIsRequiredError("password")
)

// Courier represents a delivery agent.
//
// Business rules:
//   - Personal data follows kernel.PersonalInfo validation
//   - The password is non-empty; it is compared as plain text by the login flow
//
// Example usage:
//
//	password, _ := courier.GeneratePassword()
//	c, err := courier.NewCourier("12345678", "Luis Mora", "04141234567", true, password)
//	if err != nil {
//	    // Handle validation error
//	}
type Courier struct {
	// info holds national ID, name and phone
	info kernel.PersonalInfo
	// available tells the dispatcher the courier can take orders
	available bool
	// password is the system-generated login credential
	password string
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier validates the personal data and builds a Courier.
func NewCourier(nationalID, name, phone string, available bool, password string) (*Courier, error) {
	info, infoErr := kernel.NewPersonalInfo(nationalID, name, phone)

	var passwordErr error
	if strings.TrimSpace(password) == "" {
		passwordErr = ErrPasswordIsRequired
	}

	if err := errors.Join(infoErr, passwordErr); err != nil {
		return nil, err
	}

	return &Courier{
		info:      info,
		available: available,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreCourier rebuilds a courier from storage without format validation.
func RestoreCourier(nationalID, name, phone string, available bool, password string) (*Courier, error) {
	if err := kernel.ValidateID("courier id", nationalID); err != nil {
		return nil, err
	}
	return &Courier{
		info:      kernel.RestorePersonalInfo(nationalID, name, phone),
		available: available,
		password:  password,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// ID returns the courier's national ID.
func (c *Courier) ID() string { return c.info.NationalID() }

func (c *Courier) Info() kernel.PersonalInfo { return c.info }

func (c *Courier) Name() string { return c.info.Name() }

func (c *Courier) Phone() string { return c.info.Phone() }

// IsAvailable reports whether the courier can currently take orders.
func (c *Courier) IsAvailable() bool { return c.available }

func (c *Courier) Password() string { return c.password }

// SetAvailability sets the availability flag.
func (c *Courier) SetAvailability(available bool) {
	c.available = available
}

// ToggleAvailability flips the availability flag and returns the new value.
func (c *Courier) ToggleAvailability() bool {
	c.available = !c.available
	return c.available
}
