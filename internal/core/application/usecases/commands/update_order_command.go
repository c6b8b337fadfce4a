package commands

import (
	"errors"
	"strings"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"
	"ordertracker/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand is a partial update of an existing order. Only the
// fields set in the patch are written; form answers are merged key by key.
type UpdateOrderCommand struct {
	orderID string
	patch   order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(orderID string, patch order.Patch) (UpdateOrderCommand, error) {
	if strings.TrimSpace(orderID) == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("orderId")
	}
	if patch.CurrentStage != nil {
		if err := patch.CurrentStage.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	return UpdateOrderCommand{
		orderID: orderID,
		patch:   patch,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) OrderID() string {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}
