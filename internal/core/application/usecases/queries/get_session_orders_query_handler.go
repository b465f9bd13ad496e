package queries

import (
	"context"

	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/core/ports"
)

// GetSessionOrdersQueryHandler fetches the order lines of a session from
// the gateway.
type GetSessionOrdersQueryHandler struct {
	gateway ports.PosGateway
}

// NewGetSessionOrdersQueryHandler creates a handler for session order queries.
func NewGetSessionOrdersQueryHandler(gateway ports.PosGateway) GetSessionOrdersQueryHandler {
	return GetSessionOrdersQueryHandler{gateway: gateway}
}

// Handle fetches the session's order lines in backend order.
func (h GetSessionOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetSessionOrdersQuery,
) ([]orderline.OrderLine, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.gateway.FetchSessionOrders(ctx, query.SessionID())
}
