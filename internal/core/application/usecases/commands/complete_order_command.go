package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand marks an existing order completed.
type CompleteOrderCommand struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID string) (CompleteOrderCommand, error) {
	if strings.TrimSpace(orderID) == "" {
		return CompleteOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return CompleteOrderCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() string {
	return c.orderID
}
