package commands

import (
	"errors"

	"digisales/internal/pkg/errs"
	"digisales/internal/pkg/guard"
)

var (
	ErrCloseSessionCommandIsNotConstructed = errors.New(
		"CloseSessionCommand must be created via NewCloseSessionCommand constructor",
	)
)

// CloseSessionCommand represents a request to end a dining session.
type CloseSessionCommand struct { //nolint:recvcheck //using for validation
	sessionID string

	guard guard.ConstructorGuard
}

// NewCloseSessionCommand creates a command to close the identified session.
func NewCloseSessionCommand(sessionID string) (CloseSessionCommand, error) {
	cmd := CloseSessionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSessionID(sessionID); err != nil {
		return CloseSessionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseSessionCommand) Validate() error {
	return c.guard.Validate(ErrCloseSessionCommandIsNotConstructed)
}

// SessionID returns the identifier of the session to close.
func (c CloseSessionCommand) SessionID() string {
	return c.sessionID
}

func (c *CloseSessionCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return errs.NewValueIsRequiredError("sessionID")
	}
	c.sessionID = sessionID
	return nil
}
