package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
//
// Repositories obtained after Begin see and produce changes that become
// durable only on Commit. Repositories obtained from a unit of work that was
// never begun operate directly on storage, one call at a time.
type UnitOfWork interface {
	// Begin starts the transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Commit makes every change durable.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards every change.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	ClientRepository() ClientRepository
	CourierRepository() CourierRepository
	OrderRepository() OrderRepository
	HistoryRepository() HistoryRepository
	UserRepository() UserRepository
}
