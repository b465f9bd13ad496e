package commands

import (
	"context"

	"digisales/internal/core/ports"
)

// UpdateOrderStatusCommandHandler changes an order line's kitchen status.
// Transition legality is settled here, before the gateway call: a line
// already served or cancelled admits no further changes, everything else
// may move to any valid status.
type UpdateOrderStatusCommandHandler struct {
	gateway ports.PosGateway
}

// NewUpdateOrderStatusCommandHandler creates a handler for status updates.
func NewUpdateOrderStatusCommandHandler(gateway ports.PosGateway) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		gateway: gateway,
	}
}

// Handle validates the transition against the last observed status and
// forwards it to the gateway. Returns a TerminalStateError without touching
// the gateway when the line is already terminal.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := cmd.Current().TransitionTo(cmd.Next()); err != nil {
		return err
	}

	return h.gateway.UpdateOrderStatus(ctx, cmd.OrderID(), cmd.Next())
}
