package commands

import (
	"errors"

	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrRestoreHeldOrderCommandIsNotConstructed = errors.New(
		"RestoreHeldOrderCommand must be created via NewRestoreHeldOrderCommand constructor",
	)
)

// RestoreHeldOrderCommand represents a request to pick a held order back up
// into the register cart.
type RestoreHeldOrderCommand struct { //nolint:recvcheck //using for validation
	orderName string

	guard guard.ConstructorGuard
}

// NewRestoreHeldOrderCommand creates a command to restore the named hold.
func NewRestoreHeldOrderCommand(orderName string) (RestoreHeldOrderCommand, error) {
	cmd := RestoreHeldOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderName(orderName); err != nil {
		return RestoreHeldOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreHeldOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreHeldOrderCommandIsNotConstructed)
}

// OrderName returns the name of the hold to restore.
func (c RestoreHeldOrderCommand) OrderName() string {
	return c.orderName
}

func (c *RestoreHeldOrderCommand) setOrderName(orderName string) error {
	if orderName == "" {
		return errs.NewValueIsRequiredError("orderName")
	}
	c.orderName = orderName
	return nil
}
