package heldorder

import (
	"fmt"

	"digisales/internal/pkg/errs"
)

// Status represents the lifecycle state of a held order.
//
// State transitions:
//
//	Held ──> Processed
//
// "Held-order" is the initial state of a parked cart. "Processed" is a soft
// signal that the hold has been picked up again; the record is only removed
// by an explicit delete, never by the transition.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Held is the initial status of a freshly parked cart.
	Held

	// Processed indicates the held order has been restored into a cart.
	Processed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Held:      "Held-order",
		Processed: "Processed",
	}
}

// StatusFromString parses the persisted string form of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid held-order status", s),
	)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid held-order status", s),
		)
	}
	return nil
}

// String returns the persisted representation of the status, or "Unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Process transitions the status to Processed.
//
// Valid transitions:
//   - Held -> Processed (hold picked up)
//   - Processed -> Processed (repeat restores are idempotent)
//
// Returns the new status, or an error when the current value is invalid.
func (s Status) Process() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	return Processed, nil
}
