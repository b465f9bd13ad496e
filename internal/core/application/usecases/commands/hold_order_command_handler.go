package commands

import (
	"context"

	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"
)

// HoldOrderCommandHandler persists a named cart snapshot as a held order.
// Name uniqueness is enforced by the store itself; a lost race surfaces as
// a NameConflictError from the repository, never as a client-side check.
type HoldOrderCommandHandler struct {
	uowFactory HeldOrderUoWFactory
}

// NewHoldOrderCommandHandler creates a handler for hold operations.
func NewHoldOrderCommandHandler(uowFactory HeldOrderUoWFactory) HoldOrderCommandHandler {
	return HoldOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the hold command and returns the persisted held order.
// Returns a NameConflictError when the name is already taken.
func (h *HoldOrderCommandHandler) Handle(ctx context.Context, cmd HoldOrderCommand) (*heldorder.HeldOrder, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hold, err := heldorder.NewHeldOrder(kernel.NewUUID(), cmd.OrderName(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.HeldOrderRepository().Add(ctx, hold); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return hold, nil
}
