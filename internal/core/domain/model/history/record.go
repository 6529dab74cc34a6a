package history

import (
	"errors"
	"strings"
	"time"

	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/pkg/errs"
	"courierdesk/internal/pkg/guard"
)

var (
	// ErrRecordIsNotConstructed is returned when a Record bypassed NewRecord/RestoreRecord.
	ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")
	// ErrRecordAlreadyExists is returned when appending a record whose ID is taken.
	ErrRecordAlreadyExists = errors.New("history record already exists")
)

// Record is one entry of the delivery history ledger.
//
// A Record has no setters: once built it only exposes its values.
type Record struct {
	id         string
	orderID    string
	courierID  string
	outcome    Outcome
	occurredAt time.Time
	location   string

	guard guard.ConstructorGuard
}

// NewRecord builds a ledger entry for a terminal order event.
//
// courierID may be empty when the order had no courier at that moment.
// occurredAt is truncated to the minute.
func NewRecord(id, orderID, courierID string, outcome Outcome, occurredAt time.Time, location string) (*Record, error) {
	if err := errors.Join(
		kernel.ValidateID("history id", id),
		kernel.ValidateID("order id", orderID),
		outcome.Validate(),
		validateOccurredAt(occurredAt),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:         id,
		orderID:    orderID,
		courierID:  strings.TrimSpace(courierID),
		outcome:    outcome,
		occurredAt: kernel.TruncateToMinute(occurredAt),
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreRecord rebuilds a Record read from storage. occurredAt may be the
// zero time for legacy entries without a timestamp; the statistics engine
// skips those.
func RestoreRecord(id, orderID, courierID string, outcome Outcome, occurredAt time.Time, location string) (*Record, error) {
	if err := errors.Join(
		kernel.ValidateID("history id", id),
		outcome.Validate(),
	); err != nil {
		return nil, err
	}

	return &Record{
		id:         id,
		orderID:    orderID,
		courierID:  courierID,
		outcome:    outcome,
		occurredAt: occurredAt,
		location:   location,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func validateOccurredAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("event time")
	}
	return nil
}

// Validate ensures the record was built by one of the constructors.
func (r *Record) Validate() error {
	if r == nil {
		return ErrRecordIsNotConstructed
	}
	return r.guard.Validate(ErrRecordIsNotConstructed)
}

func (r *Record) ID() string { return r.id }

func (r *Record) OrderID() string { return r.orderID }

// CourierID returns the courier that held the order at event time, or "".
func (r *Record) CourierID() string { return r.courierID }

func (r *Record) Outcome() Outcome { return r.outcome }

// OccurredAt returns the event time; zero for legacy entries without one.
func (r *Record) OccurredAt() time.Time { return r.occurredAt }

// Location is the delivery address snapshot taken at event time.
func (r *Record) Location() string { return r.location }
