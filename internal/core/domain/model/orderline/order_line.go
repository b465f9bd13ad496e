// Package orderline models one distinct item/quantity commitment against a
// dining session, tracked through the kitchen status lifecycle.
//
// Order lines are created on the backend by order submission and are read
// back through polling; this package is their read model plus the status
// state machine. Lines are never deleted, only transitioned to a terminal
// status.
package orderline

import "digisales/internal/core/domain/model/kernel"

// OrderLine is a read model of a backend order line.
type OrderLine struct {
	ID              string
	SessionID       string
	ItemCode        string
	ItemDescription string
	Quantity        int
	UnitPrice       kernel.Money
	LineTotal       kernel.Money
	Status          Status
	Notes           string
}

// CanTransitionTo checks whether the line's current status allows an update
// to next. See Status.TransitionTo for the legality rules.
func (l OrderLine) CanTransitionTo(next Status) error {
	return l.Status.TransitionTo(next)
}
