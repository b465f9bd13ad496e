package heldorder

import (
	"errors"
	"time"

	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
	"digisales/internal/pkg/errs"
)

var (
	// ErrHeldOrderIsNotConstructed is returned when a HeldOrder instance was
	// not created through NewHeldOrder or RestoreHeldOrder.
	ErrHeldOrderIsNotConstructed = errors.New("HeldOrder must be created via NewHeldOrder or RestoreHeldOrder")
)

// HeldOrder is a named, persisted snapshot of a cart parked for later
// resumption. It is the aggregate root of the held-order store.
//
// Invariants:
//   - orderName is non-empty and unique among not-yet-deleted held orders
//     (uniqueness is enforced by the store's unique index, not here)
//   - the snapshot holds at least one raw item occurrence
//   - items are raw cart occurrences, one entry per unit of quantity, so a
//     restore reproduces the exact cart including removal semantics
//
// The cart only ever works with copies of the items; the aggregate owns its
// snapshot exclusively.
type HeldOrder struct {
	id        kernel.UUID
	orderName string
	items     []menu.Item
	createdAt time.Time
	status    Status

	isConstructed bool
}

// NewHeldOrder creates a held order from a cart snapshot.
// The name must be non-empty and the snapshot must hold at least one item.
// The new hold starts in the Held status with the current creation time.
func NewHeldOrder(id kernel.UUID, orderName string, items []menu.Item) (*HeldOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if orderName == "" {
		return nil, errs.NewValueIsRequiredError("orderName")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	copied := make([]menu.Item, len(items))
	copy(copied, items)

	return &HeldOrder{
		id:            id,
		orderName:     orderName,
		items:         copied,
		createdAt:     time.Now().UTC(),
		status:        Held,
		isConstructed: true,
	}, nil
}

// RestoreHeldOrder reconstructs a held order from persistence.
// Unlike NewHeldOrder it accepts any valid status and the stored creation
// time, but applies the same field validation.
func RestoreHeldOrder(
	id kernel.UUID,
	orderName string,
	items []menu.Item,
	createdAt time.Time,
	status Status,
) (*HeldOrder, error) {
	if err := errors.Join(
		id.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if orderName == "" {
		return nil, errs.NewValueIsRequiredError("orderName")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}

	copied := make([]menu.Item, len(items))
	copy(copied, items)

	return &HeldOrder{
		id:            id,
		orderName:     orderName,
		items:         copied,
		createdAt:     createdAt,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the HeldOrder was created through a constructor.
func (h *HeldOrder) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHeldOrderIsNotConstructed
	}
	return nil
}

// ID returns the record identifier.
func (h *HeldOrder) ID() kernel.UUID {
	return h.id
}

// OrderName returns the user-supplied unique name of the hold.
func (h *HeldOrder) OrderName() string {
	return h.orderName
}

// Items returns a copy of the raw item occurrences of the snapshot.
func (h *HeldOrder) Items() []menu.Item {
	copied := make([]menu.Item, len(h.items))
	copy(copied, h.items)
	return copied
}

// CreatedAt returns the creation time of the hold.
func (h *HeldOrder) CreatedAt() time.Time {
	return h.createdAt
}

// Status returns the current lifecycle status.
func (h *HeldOrder) Status() Status {
	return h.status
}

// Process marks the held order as picked up. The record stays in the store
// until it is explicitly deleted.
func (h *HeldOrder) Process() error {
	newStatus, err := h.status.Process()
	if err != nil {
		return err
	}
	h.status = newStatus
	return nil
}

// IsEqual compares two held orders by their record identifiers.
func (h *HeldOrder) IsEqual(other *HeldOrder) bool {
	return other != nil && h.id.IsEqual(other.id)
}
