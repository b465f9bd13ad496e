package commands

import (
	"errors"

	"digisales/internal/core/domain/model/menu"
	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrHoldOrderCommandIsNotConstructed = errors.New(
		"HoldOrderCommand must be created via NewHoldOrderCommand constructor",
	)
)

// HoldOrderCommand represents a request to park the current cart under a
// user-supplied name for later resumption.
//
// The caller must disable repeat submission until the handler responds:
// the command is attempted at most once per user-initiated "Hold" action,
// so a duplicate-name race can only be lost against another client, where
// the store's uniqueness constraint settles it.
type HoldOrderCommand struct { //nolint:recvcheck //using for validation
	orderName string
	items     []menu.Item

	guard guard.ConstructorGuard
}

// NewHoldOrderCommand creates a command to hold a cart snapshot.
// Validates that the name is non-empty and the snapshot holds at least one
// raw item occurrence.
func NewHoldOrderCommand(orderName string, items []menu.Item) (HoldOrderCommand, error) {
	cmd := HoldOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderName(orderName),
		cmd.setItems(items),
	); err != nil {
		return HoldOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c HoldOrderCommand) Validate() error {
	return c.guard.Validate(ErrHoldOrderCommandIsNotConstructed)
}

// OrderName returns the user-supplied hold name.
func (c HoldOrderCommand) OrderName() string {
	return c.orderName
}

// Items returns the raw cart snapshot to persist.
func (c HoldOrderCommand) Items() []menu.Item {
	return c.items
}

func (c *HoldOrderCommand) setOrderName(orderName string) error {
	if orderName == "" {
		return errs.NewValueIsRequiredError("orderName")
	}
	c.orderName = orderName
	return nil
}

func (c *HoldOrderCommand) setItems(items []menu.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]menu.Item, len(items))
	copy(c.items, items)
	return nil
}
