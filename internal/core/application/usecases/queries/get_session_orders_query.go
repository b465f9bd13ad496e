package queries

import (
	"errors"

	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrGetSessionOrdersQueryIsNotConstructed = errors.New(
		"GetSessionOrdersQuery must be created via NewGetSessionOrdersQuery constructor",
	)
)

// GetSessionOrdersQuery retrieves the order lines of one dining session.
type GetSessionOrdersQuery struct {
	sessionID string

	guard guard.ConstructorGuard
}

// NewGetSessionOrdersQuery creates a query for one session's order lines.
func NewGetSessionOrdersQuery(sessionID string) (GetSessionOrdersQuery, error) {
	if sessionID == "" {
		return GetSessionOrdersQuery{}, errs.NewValueIsRequiredError("sessionID")
	}
	return GetSessionOrdersQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSessionOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetSessionOrdersQueryIsNotConstructed)
}

// SessionID returns the identifier of the session to inspect.
func (q GetSessionOrdersQuery) SessionID() string {
	return q.sessionID
}
