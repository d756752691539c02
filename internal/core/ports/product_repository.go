package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product and assigns it the next sequential identifier.
	Add(ctx context.Context, entity *product.Product) error

	// Update overwrites the stored record for the entity's identifier.
	// Returns an ObjectNotFoundError if no such product exists.
	Update(ctx context.Context, entity *product.Product) error

	// Get retrieves a product by identifier.
	// Returns an ObjectNotFoundError if no such product exists.
	Get(ctx context.Context, id kernel.ID) (*product.Product, error)

	// GetAll retrieves all products in insertion order.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetByCategory retrieves the products in the given category,
	// preserving their relative insertion order.
	GetByCategory(ctx context.Context, category string) ([]*product.Product, error)

	// Remove deletes a product by identifier.
	// Returns an ObjectNotFoundError if no such product exists.
	Remove(ctx context.Context, id kernel.ID) error
}
