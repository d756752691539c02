package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
)

// PriceProvider resolves current unit prices from the product catalog.
// The order lifecycle consumes it during creation to capture price
// snapshots; it is the only external lookup the engine performs, so callers
// bound it with a context deadline.
type PriceProvider interface {
	// UnitPrice returns the current unit price of the given product.
	// Returns an ObjectNotFoundError if the product is unknown.
	UnitPrice(ctx context.Context, productID kernel.ID) (kernel.Money, error)
}
