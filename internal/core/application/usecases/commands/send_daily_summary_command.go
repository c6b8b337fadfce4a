package commands

import (
	"errors"

	"ordertracker/internal/pkg/guard"
)

var (
	ErrSendDailySummaryCommandIsNotConstructed = errors.New(
		"SendDailySummaryCommand must be created via NewSendDailySummaryCommand constructor",
	)
)

// SendDailySummaryCommand runs one sweep over all orders. It has no
// parameters; the recipient and the time zone are fixed at wiring time.
type SendDailySummaryCommand struct {
	guard guard.ConstructorGuard
}

func NewSendDailySummaryCommand() SendDailySummaryCommand {
	return SendDailySummaryCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c SendDailySummaryCommand) Validate() error {
	return c.guard.Validate(ErrSendDailySummaryCommandIsNotConstructed)
}
