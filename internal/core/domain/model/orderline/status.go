package orderline

import (
	"fmt"

	"digisales/internal/pkg/errs"
)

// Status is the kitchen lifecycle state of an order line, in the lowercase
// wire form used by the backend.
//
// State machine:
//
//	pending ──> preparing ──> ready ──> served   (terminal)
//	pending|preparing|ready ──> cancelled        (terminal)
//
// Transitions are deliberately permissive: any non-terminal line may move to
// any valid status, including skipping ahead (pending straight to ready).
// Only the terminal states block further updates. This mirrors the backend's
// observed behavior and must not be tightened without a product decision.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusCancelled Status = "cancelled"
)

func validStatuses() map[Status]bool {
	return map[Status]bool{
		StatusPending:   true,
		StatusPreparing: true,
		StatusReady:     true,
		StatusServed:    true,
		StatusCancelled: true,
	}
}

// ParseStatus converts a wire string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known lifecycle states.
func (s Status) Validate() error {
	if !validStatuses()[s] {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%q is not a valid order status", string(s)),
		)
	}
	return nil
}

// String returns the wire form of the status.
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusServed || s == StatusCancelled
}

// TransitionTo checks the legality of moving from the current status to next.
//
// Returns:
//   - a TerminalStateError when the current status is served or cancelled
//   - a validation error when next is not a known status
//   - nil otherwise (see the type comment for the permissive policy)
func (s Status) TransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if s.IsTerminal() {
		return errs.NewTerminalStateError("order", string(s))
	}
	return nil
}
