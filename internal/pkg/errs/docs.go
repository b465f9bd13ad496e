// Package errs provides standardized error types for the POS application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle:
//   - ValueIsRequiredError / ValueIsInvalidError: validation failures,
//     rejected before any network call
//   - ValueIsOutOfRangeError: numeric bounds violations (e.g. guest count)
//   - ObjectNotFoundError: operating on a missing named resource
//   - NameConflictError: creating a held order under a taken name
//   - TerminalStateError: status updates against served or cancelled orders
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrNameConflict)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is resolves to the sentinel
package errs
