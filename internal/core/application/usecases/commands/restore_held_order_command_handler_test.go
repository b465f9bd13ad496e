package commands_test

import (
	"testing"

	"digisales/internal/core/application/usecases/commands"
	"digisales/internal/core/domain/model/heldorder"
	"digisales/internal/core/domain/model/kernel"
	"digisales/internal/core/domain/model/menu"
	"digisales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRestoreHeldOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	items := []menu.Item{
		mustItem(t, "STK-1", "Nasi Lemak", "12.50"),
		mustItem(t, "STK-1", "Nasi Lemak", "12.50"),
		mustItem(t, "STK-2", "Teh Tarik", "3.00"),
	}
	hold, err := heldorder.NewHeldOrder(kernel.NewUUID(), "Table 5", items)
	require.NoError(t, err)

	cmd, _ := commands.NewRestoreHeldOrderCommand("Table 5")

	repo := new(MockHeldOrderRepository)
	uow := new(MockHeldOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeldOrderRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "Table 5").Return(hold, nil).Once(),
		repo.On("Update", mock.Anything, hold).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHeldOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreHeldOrderCommandHandler(factory)
	restored, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	// raw occurrences come back one entry per unit
	require.Len(t, restored, 3)
	assert.Equal(t, "STK-1", restored[0].StockID())
	assert.Equal(t, "STK-1", restored[1].StockID())
	assert.Equal(t, "STK-2", restored[2].StockID())
	assert.Equal(t, heldorder.Processed, hold.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestoreHeldOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRestoreHeldOrderCommand("Missing")

	repo := new(MockHeldOrderRepository)
	uow := new(MockHeldOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("HeldOrderRepository").Return(repo).Once(),
		repo.On("GetByName", mock.Anything, "Missing").
			Return(nil, errs.NewObjectNotFoundError("orderName", "Missing")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockHeldOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreHeldOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRestoreHeldOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RestoreHeldOrderCommand{} // not constructed properly
	factory := new(MockHeldOrderUoWFactory)
	h := commands.NewRestoreHeldOrderCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
