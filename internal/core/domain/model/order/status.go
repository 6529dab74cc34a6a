package order

import (
	"errors"
	"fmt"
	"strings"

	"courierdesk/internal/pkg/errs"
)

// ErrOrderAlreadyFinalized is returned by any transition or edit attempted on a
// Delivered or Cancelled order.
var ErrOrderAlreadyFinalized = errors.New("order already finalized")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> EnRoute ──┬──> Delivered
//	   │                  └──> Cancelled
//	   ├──────────────────────> Delivered
//	   └──────────────────────> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota
	// Pending is the initial status of every new order.
	Pending
	// EnRoute means a courier has picked the order up.
	EnRoute
	// Delivered is terminal: the order reached the client.
	Delivered
	// Cancelled is terminal: the order was called off.
	Cancelled
)

var statusNames = map[Status]string{
	Pending:   "Pending",
	EnRoute:   "EnRoute",
	Delivered: "Delivered",
	Cancelled: "Cancelled",
}

// statusLabels are the values stored in the "estado" field of the snapshot.
var statusLabels = map[Status]string{
	Pending:   "Pendiente",
	EnRoute:   "En Camino",
	Delivered: "Entregado",
	Cancelled: "Cancelado",
}

// Validate checks that s is one of the four lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Label returns the persisted, user-facing form of the status.
func (s Status) Label() string {
	return statusLabels[s]
}

// ParseStatus maps a persisted label back to a Status. Legacy documents were
// written with inconsistent casing, so the comparison ignores case; English
// names are accepted as well.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	for status, label := range statusLabels {
		if strings.EqualFold(s, label) || strings.EqualFold(s, statusNames[status]) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsInProgress reports whether the order is still being worked on.
func (s Status) IsInProgress() bool {
	return s == Pending || s == EnRoute
}

// ValidateOpen returns ErrOrderAlreadyFinalized for terminal statuses and a
// validation error for invalid ones.
func (s Status) ValidateOpen() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrOrderAlreadyFinalized, s.Label())
	}
	return nil
}

// Dispatch transitions Pending -> EnRoute.
func (s Status) Dispatch() (Status, error) {
	if err := s.ValidateOpen(); err != nil {
		return Unknown, err
	}
	if s != Pending {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to dispatch", s),
		)
	}
	return EnRoute, nil
}

// Deliver transitions any open status to Delivered.
func (s Status) Deliver() (Status, error) {
	if err := s.ValidateOpen(); err != nil {
		return Unknown, err
	}
	return Delivered, nil
}

// Cancel transitions any open status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateOpen(); err != nil {
		return Unknown, err
	}
	return Cancelled, nil
}
