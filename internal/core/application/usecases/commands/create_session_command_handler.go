package commands

import (
	"context"

	"digisales/internal/core/ports"
)

// CreateSessionCommandHandler opens a dining session through the gateway.
type CreateSessionCommandHandler struct {
	gateway ports.PosGateway
}

// NewCreateSessionCommandHandler creates a handler for session creation.
func NewCreateSessionCommandHandler(gateway ports.PosGateway) CreateSessionCommandHandler {
	return CreateSessionCommandHandler{
		gateway: gateway,
	}
}

// Handle opens the session and returns its backend-assigned id.
func (h *CreateSessionCommandHandler) Handle(ctx context.Context, cmd CreateSessionCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	return h.gateway.CreateSession(ctx, ports.CreateSessionRequest{
		TableID:     cmd.TableID(),
		GuestCount:  cmd.GuestCount(),
		SessionType: cmd.SessionType(),
		Notes:       cmd.Notes(),
	})
}
