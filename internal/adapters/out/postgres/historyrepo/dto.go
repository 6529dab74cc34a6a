// Package historyrepo stores the delivery history ledger in PostgreSQL.
package historyrepo

import (
	"fmt"
	"time"

	"courierdesk/internal/core/domain/model/history"
)

// RecordDTO is one ledger row. OccurredAt is NULL for legacy records without
// a timestamp.
type RecordDTO struct {
	ID         string  `gorm:"primaryKey"`
	OrderID    string  `gorm:"index;not null"`
	CourierID  *string `gorm:"index"`
	Outcome    string
	OccurredAt *time.Time `gorm:"index"`
	Location   string
}

func (RecordDTO) TableName() string {
	return "delivery_history"
}

func fromDomain(r *history.Record) RecordDTO {
	var courierID *string
	if r.CourierID() != "" {
		id := r.CourierID()
		courierID = &id
	}

	var occurredAt *time.Time
	if !r.OccurredAt().IsZero() {
		at := r.OccurredAt()
		occurredAt = &at
	}

	return RecordDTO{
		ID:         r.ID(),
		OrderID:    r.OrderID(),
		CourierID:  courierID,
		Outcome:    r.Outcome().Label(),
		OccurredAt: occurredAt,
		Location:   r.Location(),
	}
}

func toDomain(dto RecordDTO) (*history.Record, error) {
	outcome, err := history.ParseOutcome(dto.Outcome)
	if err != nil {
		return nil, fmt.Errorf("history record %s: %w", dto.ID, err)
	}

	var courierID string
	if dto.CourierID != nil {
		courierID = *dto.CourierID
	}

	var occurredAt time.Time
	if dto.OccurredAt != nil {
		occurredAt = dto.OccurredAt.In(time.Local)
	}

	return history.RestoreRecord(dto.ID, dto.OrderID, courierID, outcome, occurredAt, dto.Location)
}
