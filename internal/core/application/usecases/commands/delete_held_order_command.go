package commands

import (
	"errors"

	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrDeleteHeldOrderCommandIsNotConstructed = errors.New(
		"DeleteHeldOrderCommand must be created via NewDeleteHeldOrderCommand constructor",
	)
)

// DeleteHeldOrderCommand represents a request to discard a held order.
type DeleteHeldOrderCommand struct { //nolint:recvcheck //using for validation
	orderName string

	guard guard.ConstructorGuard
}

// NewDeleteHeldOrderCommand creates a command to delete the named hold.
func NewDeleteHeldOrderCommand(orderName string) (DeleteHeldOrderCommand, error) {
	cmd := DeleteHeldOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderName(orderName); err != nil {
		return DeleteHeldOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteHeldOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteHeldOrderCommandIsNotConstructed)
}

// OrderName returns the name of the hold to delete.
func (c DeleteHeldOrderCommand) OrderName() string {
	return c.orderName
}

func (c *DeleteHeldOrderCommand) setOrderName(orderName string) error {
	if orderName == "" {
		return errs.NewValueIsRequiredError("orderName")
	}
	c.orderName = orderName
	return nil
}
