package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetOrderQueryHandler returns the stored order or *errs.ObjectNotFoundError.
type GetOrderQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetOrderQueryHandler(repo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{repo: repo}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.repo.Get(ctx, query.OrderID())
}
