package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	Save(ctx context.Context, o *order.Order) error
	FindAll(ctx context.Context) ([]*order.Order, error)
	FindByID(ctx context.Context, id string) (*order.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
