package commands

import (
	"errors"

	"digisales/internal/core/domain/model/orderline"
	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
		"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
	)
)

// UpdateOrderStatusCommand represents a request to move an order line to a
// new kitchen status. The current status comes from the caller's latest
// poll of the session; the backend does not re-check legality.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID string
	current orderline.Status
	next    orderline.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command to change an order line's
// kitchen status.
func NewUpdateOrderStatusCommand(
	orderID string,
	current orderline.Status,
	next orderline.Status,
) (UpdateOrderStatusCommand, error) {
	cmd := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCurrent(current),
		cmd.setNext(next),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order line to update.
func (c UpdateOrderStatusCommand) OrderID() string {
	return c.orderID
}

// Current returns the order line's last observed status.
func (c UpdateOrderStatusCommand) Current() orderline.Status {
	return c.current
}

// Next returns the requested status.
func (c UpdateOrderStatusCommand) Next() orderline.Status {
	return c.next
}

func (c *UpdateOrderStatusCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderStatusCommand) setCurrent(current orderline.Status) error {
	if err := current.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("current", err)
	}
	c.current = current
	return nil
}

func (c *UpdateOrderStatusCommand) setNext(next orderline.Status) error {
	if err := next.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("next", err)
	}
	c.next = next
	return nil
}
