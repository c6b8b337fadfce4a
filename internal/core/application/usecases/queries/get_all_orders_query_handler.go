package queries

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// GetAllOrdersQueryHandler lists orders in the order the store returns them.
type GetAllOrdersQueryHandler struct {
	repo ports.OrderRepository
}

func NewGetAllOrdersQueryHandler(repo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{repo: repo}
}

// Handle never returns a nil slice on success.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []*order.Order{}
	}
	return orders, nil
}
