// Package catalog adapts the product repository to the price lookup port.
package catalog

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/ports"
)

// PriceProvider resolves unit prices from the product catalog.
// An unknown product surfaces as the repository's ObjectNotFoundError,
// which order creation treats as a zero-price line rather than a failure.
type PriceProvider struct {
	products ports.ProductRepository
}

// NewPriceProvider creates a price provider over the catalog repository.
func NewPriceProvider(products ports.ProductRepository) *PriceProvider {
	return &PriceProvider{products: products}
}

// UnitPrice returns the current catalog price for the given product.
func (p *PriceProvider) UnitPrice(ctx context.Context, productID kernel.ID) (kernel.Money, error) {
	found, err := p.products.Get(ctx, productID)
	if err != nil {
		return kernel.Money{}, err
	}

	return found.Price(), nil
}
