package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations assign sequential identifiers from a monotonically
// increasing counter that is never tied to collection size, and return list
// results in insertion order. Orders are never deleted.
type OrderRepository interface {
	// Add persists a new order aggregate and assigns it the next sequential
	// identifier. The order must be valid and must not carry an identifier yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the stored record for the aggregate's identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// GetAll retrieves all orders in insertion order.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// GetByOwner retrieves the orders belonging to the given user,
	// preserving their relative insertion order.
	GetByOwner(ctx context.Context, ownerID kernel.ID) ([]*order.Order, error)
}
