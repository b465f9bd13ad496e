package commands_test

import (
	"testing"

	"digisales/internal/core/application/usecases/commands"
	"digisales/internal/core/domain/model/menu"
	"digisales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHoldOrderCommand_ValidInput(t *testing.T) {
	items := []menu.Item{mustItem(t, "STK-1", "Nasi Lemak", "12.50")}
	cmd, err := commands.NewHoldOrderCommand("Table 5 - Ali", items)
	require.NoError(t, err)
	assert.Equal(t, "Table 5 - Ali", cmd.OrderName())
	assert.Equal(t, items, cmd.Items())
}

func TestNewHoldOrderCommand_EmptyName(t *testing.T) {
	items := []menu.Item{mustItem(t, "STK-1", "Nasi Lemak", "12.50")}
	_, err := commands.NewHoldOrderCommand("", items)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewHoldOrderCommand_EmptyItems(t *testing.T) {
	_, err := commands.NewHoldOrderCommand("Table 5", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestHoldOrderCommand_ItemsAreCopied(t *testing.T) {
	src := []menu.Item{
		mustItem(t, "STK-1", "Nasi Lemak", "12.50"),
		mustItem(t, "STK-2", "Teh Tarik", "3.00"),
	}
	cmd, err := commands.NewHoldOrderCommand("Table 5", src)
	require.NoError(t, err)

	src[0] = mustItem(t, "STK-9", "Roti Canai", "2.00")
	assert.Equal(t, "STK-1", cmd.Items()[0].StockID())
}

func TestHoldOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	cmd := commands.HoldOrderCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrHoldOrderCommandIsNotConstructed)
}
