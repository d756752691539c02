package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders in insertion order, optionally narrowed to
// a single owner.
//
// Example:
//
//	query := NewGetOrdersQuery()
//	handler := NewGetOrdersQueryHandler(orderRepo)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("Found %d orders\n", len(orders))
type GetOrdersQuery struct {
	ownerID  kernel.ID
	hasOwner bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query to retrieve every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// NewGetOrdersQueryForOwner creates a query narrowed to one owner's orders.
func NewGetOrdersQueryForOwner(ownerID kernel.ID) (GetOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		ownerID:  ownerID,
		hasOwner: true,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OwnerID returns the owner filter and whether one was requested.
func (q GetOrdersQuery) OwnerID() (kernel.ID, bool) {
	return q.ownerID, q.hasOwner
}
