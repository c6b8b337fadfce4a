package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrSendMessageCommandIsNotConstructed = errors.New(
		"SendMessageCommand must be created via NewSendMessageCommand constructor",
	)
)

// SendMessageCommand sends an arbitrary text to an arbitrary address. It is a
// diagnostic for checking the messaging provider setup.
type SendMessageCommand struct {
	to      string
	message string

	guard guard.ConstructorGuard
}

func NewSendMessageCommand(to, message string) (SendMessageCommand, error) {
	var toErr, messageErr error
	if strings.TrimSpace(to) == "" {
		toErr = errs.NewValueIsRequiredError("to")
	}
	if strings.TrimSpace(message) == "" {
		messageErr = errs.NewValueIsRequiredError("message")
	}
	if err := errors.Join(toErr, messageErr); err != nil {
		return SendMessageCommand{}, err
	}

	return SendMessageCommand{to: to, message: message, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c SendMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendMessageCommandIsNotConstructed)
}

func (c SendMessageCommand) To() string {
	return c.to
}

func (c SendMessageCommand) Message() string {
	return c.message
}
