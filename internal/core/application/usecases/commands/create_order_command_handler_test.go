package commands_test

import (
	"errors"
	"testing"

	"ordertracker/internal/core/application/usecases/commands"
	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("A1", order.Details{
		CurrentStage: order.FinalStage,
		SavedStages:  []order.SavedStageRef{order.LegacyStageRef{Stage: 2}},
	})

	repo := new(MockOrderRepository)
	repo.On("Set", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID() == "A1" && o.Status() == order.PaymentPending
	})).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(repo, zap.NewNop())
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "A1", created.OrderNumber())
	assert.Equal(t, []order.StageAssignment{{Stage: 2, EmployeeCode: "0009"}}, created.SavedStages())
	assert.Equal(t, created.DateInitiated(), created.UpdatedAt())
	repo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	h := commands.NewCreateOrderCommandHandler(repo, zap.NewNop())

	t.Run("zero command", func(t *testing.T) {
		_, err := h.Handle(ctx, commands.CreateOrderCommand{})

		require.Error(t, err)
	})

	t.Run("stage out of range", func(t *testing.T) {
		cmd, _ := commands.NewCreateOrderCommand("A1", order.Details{CurrentStage: 8})

		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}

func TestCreateOrderCommandHandler_Handle_SetError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewCreateOrderCommand("A1", order.Details{})
	storeErr := errs.NewStoreFailedError("set order", errors.New("connection refused"))

	repo := new(MockOrderRepository)
	repo.On("Set", ctx, mock.AnythingOfType("*order.Order")).Return(storeErr).Once()

	h := commands.NewCreateOrderCommandHandler(repo, zap.NewNop())
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStoreFailed)
	assert.Nil(t, created)
	repo.AssertExpectations(t)
}
