// Package queries contains read operations in the CQRS architecture.
// Held-order listings read the store directly through a thin read model;
// catalog, session and order queries go to the backend gateway.
package queries

import (
	"errors"
	"time"

	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/pkg/guard"
)

var (
	ErrListHeldOrdersQueryIsNotConstructed = errors.New(
		"ListHeldOrdersQuery must be created via NewListHeldOrdersQuery constructor",
	)
)

// ListHeldOrdersQuery retrieves held orders, newest first, optionally
// narrowed to a single lifecycle status.
type ListHeldOrdersQuery struct {
	status    heldorder.Status
	hasFilter bool

	guard guard.ConstructorGuard
}

// NewListHeldOrdersQuery creates a query for all held orders.
func NewListHeldOrdersQuery() ListHeldOrdersQuery {
	return ListHeldOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewListHeldOrdersQueryWithStatus creates a query narrowed to one status.
func NewListHeldOrdersQueryWithStatus(status heldorder.Status) (ListHeldOrdersQuery, error) {
	if err := status.Validate(); err != nil {
		return ListHeldOrdersQuery{}, err
	}
	return ListHeldOrdersQuery{
		status:    status,
		hasFilter: true,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q ListHeldOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListHeldOrdersQueryIsNotConstructed)
}

// Status returns the status filter and whether one was set.
func (q ListHeldOrdersQuery) Status() (heldorder.Status, bool) {
	return q.status, q.hasFilter
}

// HeldOrderLineResponse is one aggregated item line of a held order.
type HeldOrderLineResponse struct {
	ItemCode    string
	Description string
	Quantity    int
	UnitPrice   kernel.Money
	LineTotal   kernel.Money
}

// ListHeldOrdersQueryResponse is one held order with its aggregated lines.
type ListHeldOrdersQueryResponse struct {
	ID        kernel.UUID
	OrderName string
	Status    heldorder.Status
	CreatedAt time.Time
	Lines     []HeldOrderLineResponse
	Total     kernel.Money
}
