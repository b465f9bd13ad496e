package queries

import (
	"context"

	"digisales/internal/core/domain/model/menu"
	"digisales/internal/core/ports"
)

// GetMenuQueryHandler fetches the catalog from the backend gateway and
// returns it as an immutable snapshot.
type GetMenuQueryHandler struct {
	gateway ports.PosGateway
}

// NewGetMenuQueryHandler creates a handler for catalog queries.
func NewGetMenuQueryHandler(gateway ports.PosGateway) GetMenuQueryHandler {
	return GetMenuQueryHandler{gateway: gateway}
}

// Handle fetches the catalog. A fetched catalog replaces any previously
// held snapshot wholesale.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) (menu.Catalog, error) {
	if err := query.Validate(); err != nil {
		return menu.Catalog{}, err
	}

	items, err := h.gateway.FetchMenu(ctx)
	if err != nil {
		return menu.Catalog{}, err
	}

	return menu.NewCatalog(items), nil
}
