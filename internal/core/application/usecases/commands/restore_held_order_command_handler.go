package commands

import (
	"context"

	"digisales/internal/core/domain/model/menu"
)

// RestoreHeldOrderCommandHandler marks a held order as processed and hands
// its raw item snapshot back to the caller.
//
// The snapshot keeps one entry per unit of quantity; the caller copies it
// into the cart verbatim (Cart.RestoreSnapshot), which preserves
// remove-one-occurrence semantics after the restore. The record itself
// stays in the store until an explicit delete.
type RestoreHeldOrderCommandHandler struct {
	uowFactory HeldOrderUoWFactory
}

// NewRestoreHeldOrderCommandHandler creates a handler for restore operations.
func NewRestoreHeldOrderCommandHandler(uowFactory HeldOrderUoWFactory) RestoreHeldOrderCommandHandler {
	return RestoreHeldOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the named hold "Processed" and returns its raw items.
// Returns an ObjectNotFoundError when no hold carries the name.
func (h *RestoreHeldOrderCommandHandler) Handle(
	ctx context.Context,
	cmd RestoreHeldOrderCommand,
) ([]menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.HeldOrderRepository()
	hold, err := repo.GetByName(ctx, cmd.OrderName())
	if err != nil {
		return nil, err
	}

	if err = hold.Process(); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, hold); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return hold.Items(), nil
}
