package queries

import (
	"context"

	"digisales/internal/core/domain/model/session"
	"digisales/internal/core/domain/services"
	"digisales/internal/core/ports"
)

// GetActiveSessionsQueryHandler fetches open sessions from the gateway and
// applies the client-side view criteria. Filtering happens here rather
// than on the backend; the gateway only knows "all open sessions".
type GetActiveSessionsQueryHandler struct {
	gateway ports.PosGateway
	filter  services.SessionFilter
}

// NewGetActiveSessionsQueryHandler creates a handler for session queries.
func NewGetActiveSessionsQueryHandler(gateway ports.PosGateway) GetActiveSessionsQueryHandler {
	return GetActiveSessionsQueryHandler{
		gateway: gateway,
		filter:  services.NewSessionFilter(),
	}
}

// Handle fetches the open sessions and returns the filtered, sorted view.
func (h GetActiveSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveSessionsQuery,
) ([]session.Session, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions, err := h.gateway.FetchActiveSessions(ctx)
	if err != nil {
		return nil, err
	}

	return h.filter.Apply(sessions, query.Criteria()), nil
}
