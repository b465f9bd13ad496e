package commands

import (
	"errors"

	"digisales/internal/core/domain/model/menu"
	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
)

// SubmitOrderCommand represents a request to commit the current cart to an
// active session as kitchen order lines.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	items      []menu.Item
	clientName string
	notes      string

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit cart contents.
// Items are the raw cart occurrences; aggregation into quantity lines
// happens inside the handler. The client name and notes are optional and
// attached to every line.
func NewSubmitOrderCommand(
	sessionID string,
	items []menu.Item,
	clientName string,
	notes string,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSessionID(sessionID),
		cmd.setItems(items),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.clientName = clientName
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// SessionID returns the target session identifier.
func (c SubmitOrderCommand) SessionID() string {
	return c.sessionID
}

// Items returns the raw cart occurrences to submit.
func (c SubmitOrderCommand) Items() []menu.Item {
	return c.items
}

// ClientName returns the name attached to every submitted line.
func (c SubmitOrderCommand) ClientName() string {
	return c.clientName
}

// Notes returns free-form notes attached to every submitted line.
func (c SubmitOrderCommand) Notes() string {
	return c.notes
}

func (c *SubmitOrderCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}

func (c *SubmitOrderCommand) setItems(items []menu.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	c.items = make([]menu.Item, len(items))
	copy(c.items, items)
	return nil
}
