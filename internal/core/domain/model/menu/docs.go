// Package menu models the orderable item catalog.
//
// The catalog is a leaf dependency: it is fetched from the backend once per
// view and consumed by the cart and submission flows. Items are immutable
// value objects identified by stock code.
package menu
