package queries

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
)

// GetOrdersQueryHandler lists orders from the store.
// Results preserve the repository's insertion order so listings remain
// stable across reads.
type GetOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersQueryHandler creates a handler for order listings.
func NewGetOrdersQueryHandler(orders ports.OrderRepository) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{orders: orders}
}

// Handle executes the query. With an owner filter it returns only that
// owner's orders; an owner with no orders yields an empty slice, not an
// error.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var found []*order.Order
	var err error

	if ownerID, ok := query.OwnerID(); ok {
		found, err = h.orders.GetByOwner(ctx, ownerID)
	} else {
		found, err = h.orders.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(found))
	for _, o := range found {
		responses = append(responses, NewOrderResponse(o))
	}

	return responses, nil
}
