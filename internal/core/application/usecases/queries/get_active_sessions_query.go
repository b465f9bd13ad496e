package queries

import (
	"errors"

	"digisales/internal/core/domain/services"
	"digisales/internal/pkg/guard"
)

var (
	ErrGetActiveSessionsQueryIsNotConstructed = errors.New(
		"GetActiveSessionsQuery must be created via NewGetActiveSessionsQuery constructor",
	)
)

// GetActiveSessionsQuery retrieves the open dining sessions, optionally
// narrowed and sorted by client-side criteria.
type GetActiveSessionsQuery struct {
	criteria services.SessionCriteria

	guard guard.ConstructorGuard
}

// NewGetActiveSessionsQuery creates a query for open sessions.
// The zero criteria returns every open session, newest first.
func NewGetActiveSessionsQuery(criteria services.SessionCriteria) GetActiveSessionsQuery {
	return GetActiveSessionsQuery{
		criteria: criteria,
		guard:    guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveSessionsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionsQueryIsNotConstructed)
}

// Criteria returns the view criteria to apply over the fetched snapshot.
func (q GetActiveSessionsQuery) Criteria() services.SessionCriteria {
	return q.criteria
}
