// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides:
//   - UUID: identity for held-order records
//   - Money: exact decimal amounts for prices and totals
//
// All kernel types are immutable value objects. Invalid states are
// unrepresentable after construction, so code holding a kernel value can use
// it without re-validating.
package kernel
