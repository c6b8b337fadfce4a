package commands

import (
	"context"
	"time"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"

	"go.uber.org/zap"
)

// CreateOrderCommandHandler builds a new order and writes it with overwrite
// semantics.
type CreateOrderCommandHandler struct {
	repo   ports.OrderRepository
	logger *zap.Logger
}

func NewCreateOrderCommandHandler(repo ports.OrderRepository, logger *zap.Logger) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		repo:   repo,
		logger: logger.With(zap.String("component", "create_order")),
	}
}

// Handle stamps the creation instant, derives the status and writes the
// document. The stored order is returned.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	created, err := order.NewOrder(cmd.OrderID(), cmd.Details(), time.Now())
	if err != nil {
		return nil, err
	}

	if err = h.repo.Set(ctx, created); err != nil {
		return nil, err
	}

	h.logger.Info("order created",
		zap.String("order_id", created.ID()),
		zap.Int("stage", int(created.CurrentStage())),
		zap.Stringer("status", created.Status()),
	)
	return created, nil
}
