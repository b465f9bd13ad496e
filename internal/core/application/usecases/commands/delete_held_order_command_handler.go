package commands

import "context"

// DeleteHeldOrderCommandHandler removes a held order from the store.
type DeleteHeldOrderCommandHandler struct {
	uowFactory HeldOrderUoWFactory
}

// NewDeleteHeldOrderCommandHandler creates a handler for delete operations.
func NewDeleteHeldOrderCommandHandler(uowFactory HeldOrderUoWFactory) DeleteHeldOrderCommandHandler {
	return DeleteHeldOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes the named hold together with its item lines.
// Returns an ObjectNotFoundError when no hold carries the name.
func (h *DeleteHeldOrderCommandHandler) Handle(ctx context.Context, cmd DeleteHeldOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.HeldOrderRepository().DeleteByName(ctx, cmd.OrderName()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
