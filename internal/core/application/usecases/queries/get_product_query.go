package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/guard"
)

var ErrGetProductQueryIsNotConstructed = errors.New(
	"GetProductQuery must be created via NewGetProductQuery constructor",
)

// GetProductQuery retrieves a single product by its identifier.
type GetProductQuery struct {
	productID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve a product by id.
func NewGetProductQuery(productID kernel.ID) (GetProductQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductQuery{}, err
	}

	return GetProductQuery{
		productID: productID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product to retrieve.
func (q GetProductQuery) ProductID() kernel.ID {
	return q.productID
}

// ProductResponse represents catalog product information for read results.
type ProductResponse struct {
	ID          kernel.ID
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	InStock     bool
	CreatedAt   time.Time
}

// NewProductResponse maps a product entity to its read representation.
func NewProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
		Category:    p.Category(),
		InStock:     p.InStock(),
		CreatedAt:   p.CreatedAt(),
	}
}
