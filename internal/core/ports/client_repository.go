package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/client"
)

// ClientRepository defines the persistence contract for client aggregates.
type ClientRepository interface {
	Save(ctx context.Context, c *client.Client) error
	FindAll(ctx context.Context) ([]*client.Client, error)
	FindByID(ctx context.Context, id string) (*client.Client, error)
	DeleteByID(ctx context.Context, id string) error
}
