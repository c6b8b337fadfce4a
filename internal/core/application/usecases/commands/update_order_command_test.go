package commands_test

import (
	"testing"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		product := "Caps"
		cmd, err := commands.NewUpdateOrderCommand("A1", order.Patch{Product: &product})

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "A1", cmd.OrderID())
		assert.Equal(t, "Caps", *cmd.Patch().Product)
	})

	t.Run("should require order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand("", order.Patch{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject stage out of range", func(t *testing.T) {
		stage := order.Stage(0)
		_, err := commands.NewUpdateOrderCommand("A1", order.Patch{CurrentStage: &stage})

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject zero value", func(t *testing.T) {
		var cmd commands.UpdateOrderCommand

		assert.Equal(t, commands.ErrUpdateOrderCommandIsNotConstructed, cmd.Validate())
	})
}
