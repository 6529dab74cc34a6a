package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/courier"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	Save(ctx context.Context, c *courier.Courier) error
	FindAll(ctx context.Context) ([]*courier.Courier, error)
	FindByID(ctx context.Context, id string) (*courier.Courier, error)
	DeleteByID(ctx context.Context, id string) error

	// UpdateAvailability rewrites only the availability flag of one courier.
	// Returns errs.ErrObjectNotFound when the courier does not exist.
	UpdateAvailability(ctx context.Context, id string, available bool) error
}
