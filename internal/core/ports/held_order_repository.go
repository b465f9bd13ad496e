package ports

import (
	"context"

	"digisales/internal/core/domain/model/heldorder"
)

// HeldOrderRepository defines the persistence contract for held-order
// aggregates. The store enforces at-most-one unexpired hold per name with a
// uniqueness constraint of its own; callers never check-then-create.
type HeldOrderRepository interface {
	// Add persists a new held order.
	// Returns a NameConflictError when a held order with the same name
	// (case-sensitive, exact) already exists.
	Add(ctx context.Context, aggregate *heldorder.HeldOrder) error

	// Update persists status changes to an existing held order.
	Update(ctx context.Context, aggregate *heldorder.HeldOrder) error

	// GetByName retrieves a held order with its item snapshot.
	// Returns an ObjectNotFoundError when no hold carries the name.
	GetByName(ctx context.Context, orderName string) (*heldorder.HeldOrder, error)

	// DeleteByName permanently removes a held order and its line records.
	// Returns an ObjectNotFoundError when no hold carries the name.
	// The removal is irreversible.
	DeleteByName(ctx context.Context, orderName string) error
}
