package commands

import (
	"errors"

	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrCreateSessionCommandIsNotConstructed = errors.New(
		"CreateSessionCommand must be created via NewCreateSessionCommand constructor",
	)
)

// CreateSessionCommand represents a request to open a dining session on a
// table.
type CreateSessionCommand struct { //nolint:recvcheck //using for validation
	tableID     string
	guestCount  int
	sessionType string
	notes       string

	guard guard.ConstructorGuard
}

// NewCreateSessionCommand creates a command to open a session.
// The session type defaults to "dine_in" when empty; notes are optional.
func NewCreateSessionCommand(
	tableID string,
	guestCount int,
	sessionType string,
	notes string,
) (CreateSessionCommand, error) {
	cmd := CreateSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTableID(tableID),
		cmd.setGuestCount(guestCount),
	); err != nil {
		return CreateSessionCommand{}, err
	}

	if sessionType == "" {
		sessionType = "dine_in"
	}
	cmd.sessionType = sessionType
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateSessionCommand) Validate() error {
	return c.guard.Validate(ErrCreateSessionCommandIsNotConstructed)
}

// TableID returns the identifier of the table to seat.
func (c CreateSessionCommand) TableID() string {
	return c.tableID
}

// GuestCount returns the number of guests at the table.
func (c CreateSessionCommand) GuestCount() int {
	return c.guestCount
}

// SessionType returns the kind of service for the session.
func (c CreateSessionCommand) SessionType() string {
	return c.sessionType
}

// Notes returns free-form notes attached to the session.
func (c CreateSessionCommand) Notes() string {
	return c.notes
}

func (c *CreateSessionCommand) setTableID(tableID string) error {
	if tableID == "" {
		return errs.NewValueIsRequiredError("tableID")
	}
	c.tableID = tableID
	return nil
}

func (c *CreateSessionCommand) setGuestCount(guestCount int) error {
	if guestCount <= 0 {
		return errs.NewValueIsOutOfRangeError("guestCount", guestCount, 1, nil)
	}
	c.guestCount = guestCount
	return nil
}
