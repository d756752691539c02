package queries

import (
	"context"

	"shop/internal/core/ports"
)

// GetProductQueryHandler retrieves a single product from the catalog.
type GetProductQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductQueryHandler creates a handler for single-product queries.
func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

// Handle executes the query. Fails with an ObjectNotFoundError if no product
// exists under the requested id.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return ProductResponse{}, err
	}

	found, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		return ProductResponse{}, err
	}

	return NewProductResponse(found), nil
}
