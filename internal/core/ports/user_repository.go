package ports

import (
	"context"

	"courierdesk/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for login accounts.
type UserRepository interface {
	Save(ctx context.Context, u *user.User) error
	FindAll(ctx context.Context) ([]*user.User, error)
	FindByID(ctx context.Context, id string) (*user.User, error)
	DeleteByID(ctx context.Context, id string) error
}
