package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/history"
)

// HistoryRepository is the delivery history ledger.
//
// The ledger is append-only: there is no way to update a record. DeleteByID
// exists only for the client removal cascade.
type HistoryRepository interface {
	// Add appends a record. A record whose ID is already stored is rejected
	// with history.ErrRecordAlreadyExists and nothing is written.
	Add(ctx context.Context, r *history.Record) error
	FindAll(ctx context.Context) ([]*history.Record, error)
	FindByID(ctx context.Context, id string) (*history.Record, error)
	DeleteByID(ctx context.Context, id string) error
}
