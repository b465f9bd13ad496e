// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// then either a held-order store transaction or a gateway call.
package commands

import (
	"context"

	"digisales/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers that touch the held-order store.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// HeldOrderRepoFactory provides access to the held-order repository
	// within a transaction.
	HeldOrderRepoFactory interface {
		HeldOrderRepository() ports.HeldOrderRepository
	}

	// HeldOrderUoW manages transactions for held-order operations.
	HeldOrderUoW interface {
		TxManager
		HeldOrderRepoFactory
	}

	// HeldOrderUoWFactory creates new held-order unit of work instances.
	HeldOrderUoWFactory interface {
		Create() HeldOrderUoW
	}
)
