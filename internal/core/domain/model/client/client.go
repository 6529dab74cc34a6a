package client

import (
	"errors"
	"strings"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var (
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")
	// ErrClientAlreadyExists is returned when registering a national ID that is already taken.
	ErrClientAlreadyExists = errors.New("client already exists")
)

// Client is the aggregate root for people who place orders.
type Client struct {
	info    kernel.PersonalInfo
	address string
	guard   guard.ConstructorGuard
}

// NewClient validates the personal data and the address and builds a Client.
func NewClient(nationalID, name, phone, address string) (*Client, error) {
	info, infoErr := kernel.NewPersonalInfo(nationalID, name, phone)
	c := &Client{info: info, guard: guard.NewConstructorGuard()}

	if err := errors.Join(infoErr, c.setAddress(address)); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreClient rebuilds a client from storage without format validation.
func RestoreClient(nationalID, name, phone, address string) (*Client, error) {
	if err := kernel.ValidateID("client id", nationalID); err != nil {
		return nil, err
	}
	return &Client{
		info:    kernel.RestorePersonalInfo(nationalID, name, phone),
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// ID returns the client's national ID.
func (c *Client) ID() string { return c.info.NationalID() }

func (c *Client) Info() kernel.PersonalInfo { return c.info }

func (c *Client) Name() string { return c.info.Name() }

func (c *Client) Phone() string { return c.info.Phone() }

func (c *Client) Address() string { return c.address }

// UpdateDetails replaces the name, phone and address. The national ID cannot
// change. Nothing is modified when any field is invalid.
func (c *Client) UpdateDetails(name, phone, address string) error {
	info, infoErr := kernel.NewPersonalInfo(c.info.NationalID(), name, phone)
	address = strings.TrimSpace(address)

	var addressErr error
	if address == "" {
		addressErr = errs.NewValueIsRequiredError("address")
	}
	if err := errors.Join(infoErr, addressErr); err != nil {
		return err
	}

	c.info = info
	c.address = address
	return nil
}

func (c *Client) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
