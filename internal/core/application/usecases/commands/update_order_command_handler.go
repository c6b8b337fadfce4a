package commands

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"

	"go.uber.org/zap"
)

// UpdateOrderResult is the written order plus the outcome of the operator
// notification. NotificationSent is false when no form answers were supplied
// or when the send failed.
type UpdateOrderResult struct {
	Order            *order.Order
	NotificationSent bool
}

// UpdateOrderCommandHandler reads the order, merges the patch and writes it
// back. The read and the write are not atomic, so two concurrent updates of
// one order can lose one of them.
type UpdateOrderCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	operator string
	logger   *zap.Logger
}

// NewUpdateOrderCommandHandler wires the handler. operator is the address
// that receives stage summaries.
func NewUpdateOrderCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	operator string,
	logger *zap.Logger,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		repo:     repo,
		notifier: notifier,
		operator: operator,
		logger:   logger.With(zap.String("component", "update_order")),
	}
}

// Handle applies the update. When the patch carries form answers the stage
// summary is sent to the operator after the write; a failed send is logged
// and never undoes the write.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (UpdateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateOrderResult{}, err
	}

	existing, err := h.repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return UpdateOrderResult{}, err
	}

	patch := cmd.Patch()
	if err = existing.ApplyUpdate(patch, time.Now()); err != nil {
		return UpdateOrderResult{}, err
	}

	if err = h.repo.Update(ctx, existing); err != nil {
		return UpdateOrderResult{}, err
	}

	result := UpdateOrderResult{Order: existing}
	if patch.HasFormData() {
		h.logger.Debug("form answers merged",
			zap.String("order_id", existing.ID()),
			zap.Strings("fields", patch.FormData.Keys()),
		)
		result.NotificationSent = h.notify(ctx, existing)
	}

	h.logger.Info("order updated",
		zap.String("order_id", existing.ID()),
		zap.Int("stage", int(existing.CurrentStage())),
		zap.Stringer("status", existing.Status()),
		zap.Bool("notification_sent", result.NotificationSent),
	)
	return result, nil
}

func (h UpdateOrderCommandHandler) notify(ctx context.Context, o *order.Order) bool {
	id, err := h.notifier.Send(ctx, h.operator, order.UpdateMessage(o))
	if err != nil {
		h.logger.Warn("stage summary not delivered", zap.String("order_id", o.ID()), zap.Error(err))
		return false
	}
	h.logger.Debug("stage summary delivered", zap.String("order_id", o.ID()), zap.String("delivery_id", id))
	return true
}
