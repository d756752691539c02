package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its identifier.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(orderRepo)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	fmt.Printf("Order %s is %s\n", resp.ID, resp.Status)
type GetOrderQuery struct {
	orderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by id.
func NewGetOrderQuery(orderID kernel.ID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.ID {
	return q.orderID
}

// OrderLineResponse represents a single order line in read results.
type OrderLineResponse struct {
	ProductID kernel.ID
	Quantity  int
	Price     kernel.Money
	Total     kernel.Money
}

// OrderResponse represents full order information for read results.
type OrderResponse struct {
	ID          kernel.ID
	OwnerID     kernel.ID
	Lines       []OrderLineResponse
	TotalAmount kernel.Money
	Status      order.Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOrderResponse maps an order aggregate to its read representation.
func NewOrderResponse(o *order.Order) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ProductID: line.ProductID(),
			Quantity:  line.Quantity(),
			Price:     line.Price(),
			Total:     line.Total(),
		})
	}

	return OrderResponse{
		ID:          o.ID(),
		OwnerID:     o.OwnerID(),
		Lines:       lines,
		TotalAmount: o.TotalAmount(),
		Status:      o.Status(),
		CreatedAt:   o.CreatedAt(),
		UpdatedAt:   o.UpdatedAt(),
	}
}
