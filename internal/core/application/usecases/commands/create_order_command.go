package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order under a
// caller supplied id. Creating an id that already exists replaces the stored
// order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("A1", order.Details{CompanyName: "Acme"})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	orderID string
	details order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates that orderID is present. Field level rules
// (stage range, savedStages shape) are enforced when the order is built.
func NewCreateOrderCommand(orderID string, details order.Details) (CreateOrderCommand, error) {
	if strings.TrimSpace(orderID) == "" {
		return CreateOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return CreateOrderCommand{
		orderID: orderID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}
