package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a delivery order. It is the aggregate root that manages the
// order lifecycle from creation to its terminal state.
//
// Order follows these invariants:
//   - Must reference a client and carry a delivery address
//   - Combo and payment method are always selected
//   - Delivery fee and change are never negative
//   - total = combo price + delivery fee at creation, never recomputed
//   - Once Delivered or Cancelled nothing can change except the courier
//     reference being cleared by an administrative cascade
//
// References to the client and the courier are by ID only.
type Order struct {
	id        string
	clientID  string
	courierID string

	deliveryAddress string
	combo           Combo
	comboPrice      float64
	payment         Payment
	deliveryFee     float64
	total           float64

	status      Status
	createdAt   time.Time
	deliveredAt *time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a Pending order. The total is computed here once and kept
// for the life of the order.
//
// Parameters:
//   - id: opaque unique identifier, see kernel.NewOrderID
//   - clientID: national ID of an existing client
//   - deliveryAddress: usually copied from the client at creation
//   - combo, payment: must be selected
//   - deliveryFee: non-negative
//   - createdAt: truncated to the minute
//
// Example:
//
//	payment, _ := order.NewPayment(order.Cash, true, 20)
//	o, err := order.NewOrder(kernel.NewOrderID(), "12345678", "Av. Bolívar 10",
//	    order.ComboForFour, payment, 2, time.Now())
func NewOrder(
	id, clientID, deliveryAddress string,
	combo Combo,
	payment Payment,
	deliveryFee float64,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setDeliveryAddress(deliveryAddress),
		o.setCombo(combo),
		o.setPayment(payment),
		o.setDeliveryFee(deliveryFee),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.total = o.comboPrice + o.deliveryFee
	return o, nil
}

// State is the full persisted state of an order, used to rebuild it from storage.
type State struct {
	ID              string
	ClientID        string
	CourierID       string
	DeliveryAddress string
	Combo           Combo
	ComboPrice      float64
	Payment         Payment
	DeliveryFee     float64
	Total           float64
	Status          Status
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}

// RestoreOrder rebuilds an order from storage. Only the identity and the
// status are checked: stored totals, prices and legacy placeholders are taken
// as they are.
func RestoreOrder(s State) (*Order, error) {
	if err := errors.Join(kernel.ValidateID("order id", s.ID), s.Status.Validate()); err != nil {
		return nil, err
	}

	var deliveredAt *time.Time
	if s.DeliveredAt != nil {
		at := *s.DeliveredAt
		deliveredAt = &at
	}

	return &Order{
		id:              s.ID,
		clientID:        s.ClientID,
		courierID:       s.CourierID,
		deliveryAddress: s.DeliveryAddress,
		combo:           s.Combo,
		comboPrice:      s.ComboPrice,
		payment:         s.Payment,
		deliveryFee:     s.DeliveryFee,
		total:           s.Total,
		status:          s.Status,
		createdAt:       s.CreatedAt,
		deliveredAt:     deliveredAt,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// RestorePayment rebuilds a Payment from storage without validation.
func RestorePayment(method PaymentMethod, requiresChange bool, change float64) Payment {
	return Payment{method: method, requiresChange: requiresChange, change: change}
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// State returns a copy of the order's persisted state.
func (o *Order) State() State {
	return State{
		ID:              o.id,
		ClientID:        o.clientID,
		CourierID:       o.courierID,
		DeliveryAddress: o.deliveryAddress,
		Combo:           o.combo,
		ComboPrice:      o.comboPrice,
		Payment:         o.payment,
		DeliveryFee:     o.deliveryFee,
		Total:           o.total,
		Status:          o.status,
		CreatedAt:       o.createdAt,
		DeliveredAt:     o.DeliveredAt(),
	}
}

func (o *Order) ID() string { return o.id }

func (o *Order) ClientID() string { return o.clientID }

// CourierID returns the assigned courier's national ID, or "" when unassigned.
func (o *Order) CourierID() string { return o.courierID }

// HasCourier reports whether a courier is assigned.
func (o *Order) HasCourier() bool { return o.courierID != "" }

func (o *Order) DeliveryAddress() string { return o.deliveryAddress }

func (o *Order) Combo() Combo { return o.combo }

// ComboPrice is the price of the combo when it was last set.
func (o *Order) ComboPrice() float64 { return o.comboPrice }

func (o *Order) Payment() Payment { return o.payment }

func (o *Order) DeliveryFee() float64 { return o.deliveryFee }

// Total is the amount fixed at creation.
func (o *Order) Total() float64 { return o.total }

func (o *Order) Status() Status { return o.status }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// DeliveredAt returns the time of the terminal transition, or nil while the
// order is open. The returned pointer is a copy.
func (o *Order) DeliveredAt() *time.Time {
	if o.deliveredAt == nil {
		return nil
	}
	at := *o.deliveredAt
	return &at
}

// AssignCourier assigns or reassigns the order. It does not change the status.
//
// Returns ErrOrderAlreadyFinalized for terminal orders and a validation error
// for a blank courier ID.
func (o *Order) AssignCourier(courierID string) error {
	courierID = strings.TrimSpace(courierID)
	if err := kernel.ValidateID("courier id", courierID); err != nil {
		return err
	}
	if err := o.status.ValidateOpen(); err != nil {
		return err
	}

	o.courierID = courierID
	return nil
}

// UnassignCourier clears the courier reference. It is used when the courier is
// deleted and applies to orders in any status; the history ledger keeps the
// courier ID it recorded.
func (o *Order) UnassignCourier() {
	o.courierID = ""
}

// Dispatch marks the order as picked up by its courier.
func (o *Order) Dispatch() error {
	newStatus, err := o.status.Dispatch()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver closes the order as Delivered at the given time and returns the
// history record describing the event.
//
// On error the order is left untouched and no record is produced.
func (o *Order) Deliver(recordID string, at time.Time) (*history.Record, error) {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return nil, err
	}
	return o.finalize(newStatus, history.Delivered, recordID, at)
}

// Cancel closes the order as Cancelled at the given time and returns the
// history record describing the event. The record carries the courier held at
// that moment, which may be none.
func (o *Order) Cancel(recordID string, at time.Time) (*history.Record, error) {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return nil, err
	}
	return o.finalize(newStatus, history.Cancelled, recordID, at)
}

func (o *Order) finalize(newStatus Status, outcome history.Outcome, recordID string, at time.Time) (*history.Record, error) {
	record, err := history.NewRecord(recordID, o.id, o.courierID, outcome, at, o.deliveryAddress)
	if err != nil {
		return nil, err
	}

	finishedAt := record.OccurredAt()
	o.status = newStatus
	o.deliveredAt = &finishedAt
	return record, nil
}

// ChangeDeliveryAddress edits the address of an open order.
func (o *Order) ChangeDeliveryAddress(address string) error {
	if err := o.status.ValidateOpen(); err != nil {
		return err
	}
	return o.setDeliveryAddress(address)
}

// ChangeDeliveryFee edits the fee of an open order. The total is not recomputed.
func (o *Order) ChangeDeliveryFee(fee float64) error {
	if err := o.status.ValidateOpen(); err != nil {
		return err
	}
	return o.setDeliveryFee(fee)
}

// ChangeCombo edits the combo of an open order. The combo price follows the
// new combo; the total is not recomputed.
func (o *Order) ChangeCombo(combo Combo) error {
	if err := o.status.ValidateOpen(); err != nil {
		return err
	}
	return o.setCombo(combo)
}

func (o *Order) setID(id string) error {
	if err := kernel.ValidateID("order id", id); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return errs.NewValueIsRequiredErrorWithCause("client", errors.New("select a client"))
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setDeliveryAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = address
	return nil
}

func (o *Order) setCombo(combo Combo) error {
	if err := combo.Validate(); err != nil {
		return err
	}
	o.combo = combo
	o.comboPrice = combo.Price()
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Method().Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setDeliveryFee(fee float64) error {
	if err := ValidateAmount("delivery fee", fee); err != nil {
		return err
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredErrorWithCause("creation time", fmt.Errorf("order %s has no creation time", o.id))
	}
	o.createdAt = kernel.TruncateToMinute(createdAt)
	return nil
}
