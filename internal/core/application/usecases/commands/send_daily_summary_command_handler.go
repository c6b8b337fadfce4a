package commands

import (
	"context"
	"fmt"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"

	"go.uber.org/zap"
)

// DailySummaryResult reports what one sweep run found and sent.
type DailySummaryResult struct {
	InProgress     int
	PaymentPending int
	DeliveryID     string
}

// SendDailySummaryCommandHandler lists every order, composes one aggregate
// message and sends it to the operator. It only reads from the store.
type SendDailySummaryCommandHandler struct {
	repo     ports.OrderRepository
	notifier ports.Notifier
	operator string
	location *time.Location
	logger   *zap.Logger
}

// NewSendDailySummaryCommandHandler wires the handler. location decides the
// calendar date printed in the message; nil means UTC.
func NewSendDailySummaryCommandHandler(
	repo ports.OrderRepository,
	notifier ports.Notifier,
	operator string,
	location *time.Location,
	logger *zap.Logger,
) SendDailySummaryCommandHandler {
	if location == nil {
		location = time.UTC
	}
	return SendDailySummaryCommandHandler{
		repo:     repo,
		notifier: notifier,
		operator: operator,
		location: location,
		logger:   logger.With(zap.String("component", "daily_summary")),
	}
}

// Handle performs a single attempt. A store failure aborts the run before
// anything is sent; a delivery failure is returned after the message was
// composed. Neither is retried.
func (h SendDailySummaryCommandHandler) Handle(
	ctx context.Context,
	cmd SendDailySummaryCommand,
) (DailySummaryResult, error) {
	if err := cmd.Validate(); err != nil {
		return DailySummaryResult{}, err
	}

	orders, err := h.repo.List(ctx)
	if err != nil {
		return DailySummaryResult{}, fmt.Errorf("list orders for daily summary: %w", err)
	}

	inProgress, paymentPending := order.PartitionActive(orders)
	result := DailySummaryResult{InProgress: len(inProgress), PaymentPending: len(paymentPending)}

	msg := order.DailySummaryMessage(orders, time.Now().In(h.location))
	result.DeliveryID, err = h.notifier.Send(ctx, h.operator, msg)
	if err != nil {
		return result, fmt.Errorf("send daily summary: %w", err)
	}

	h.logger.Info("daily summary sent",
		zap.Int("in_progress", result.InProgress),
		zap.Int("payment_pending", result.PaymentPending),
		zap.String("delivery_id", result.DeliveryID),
	)
	return result, nil
}
