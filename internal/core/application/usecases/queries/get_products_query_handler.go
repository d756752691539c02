package queries

import (
	"context"

	"shop/internal/core/domain/model/product"
	"shop/internal/core/ports"
)

// GetProductsQueryHandler lists products from the catalog.
type GetProductsQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductsQueryHandler creates a handler for product listings.
func NewGetProductsQueryHandler(products ports.ProductRepository) GetProductsQueryHandler {
	return GetProductsQueryHandler{products: products}
}

// Handle executes the query. With a category filter it returns only that
// category's products; an unknown category yields an empty slice, not an
// error.
func (h GetProductsQueryHandler) Handle(
	ctx context.Context,
	query GetProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var found []*product.Product
	var err error

	if category, ok := query.Category(); ok {
		found, err = h.products.GetByCategory(ctx, category)
	} else {
		found, err = h.products.GetAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(found))
	for _, p := range found {
		responses = append(responses, NewProductResponse(p))
	}

	return responses, nil
}
