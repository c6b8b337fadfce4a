package commands

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"

	"go.uber.org/zap"
)

// CompleteOrderResult mirrors UpdateOrderResult for completions.
type CompleteOrderResult struct {
	Order            *order.Order
	NotificationSent bool
}

// CompleteOrderCommandHandler completes an order and tells the operator who
// signed the final stage off.
type CompleteOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	operator string
	logger   *zap.Logger
}

func NewCompleteOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	operator string,
	logger *zap.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		operator: operator,
		logger:   logger.With(zap.String("component", "complete_order")),
	}
}

// Handle fails with *errs.ObjectNotFoundError, without writing, when the
// order does not exist. Otherwise it writes the completion and then sends
// the completion message on a best-effort basis.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (CompleteOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CompleteOrderResult{}, err
	}

	existing, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return CompleteOrderResult{}, err
	}

	existing.Complete(time.Now())

	if err = h.repo.Update(ctx, existing); err != nil {
		return CompleteOrderResult{}, err
	}

	result := CompleteOrderResult{Order: existing, NotificationSent: true}
	id, err := h.notifier.Send(ctx, h.operator, order.CompletionMessage(existing))
	if err != nil {
		h.logger.Warn("completion message not delivered", zap.String("order_id", existing.ID()), zap.Error(err))
		result.NotificationSent = false
	}

	h.logger.Info("order completed",
		zap.String("order_id", existing.ID()),
		zap.String("completed_by", existing.CompletedBy()),
		zap.String("delivery_id", id),
	)
	return result, nil
}
