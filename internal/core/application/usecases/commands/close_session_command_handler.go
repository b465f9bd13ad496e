package commands

import (
	"context"

	"digisales/internal/core/ports"
)

// CloseSessionCommandHandler ends a dining session through the gateway.
type CloseSessionCommandHandler struct {
	gateway ports.PosGateway
}

// NewCloseSessionCommandHandler creates a handler for session closing.
func NewCloseSessionCommandHandler(gateway ports.PosGateway) CloseSessionCommandHandler {
	return CloseSessionCommandHandler{
		gateway: gateway,
	}
}

// Handle closes the session on the backend.
func (h *CloseSessionCommandHandler) Handle(ctx context.Context, cmd CloseSessionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.gateway.CloseSession(ctx, cmd.SessionID())
}
