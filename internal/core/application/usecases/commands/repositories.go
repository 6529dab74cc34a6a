// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"courierdesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW covers the order lifecycle: orders, the client and courier
	// they reference, and the history ledger they write to.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		CourierRepoFactory
		HistoryRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClientUoW covers client administration, including the removal cascade
	// over orders and history.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
		OrderRepoFactory
		HistoryRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// CourierUoW covers courier administration: the courier, its login
	// account and the orders it is assigned to.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   courierRepo := uow.CourierRepository()
	//   userRepo := uow.UserRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CourierUoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
		UserRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}
)
