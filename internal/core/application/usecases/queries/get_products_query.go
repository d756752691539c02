package queries

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrGetProductsQueryIsNotConstructed = errors.New(
	"GetProductsQuery must be created via NewGetProductsQuery constructor",
)

// GetProductsQuery retrieves catalog products in insertion order, optionally
// narrowed to a single category.
type GetProductsQuery struct {
	category    string
	hasCategory bool

	guard guard.ConstructorGuard
}

// NewGetProductsQuery creates a query to retrieve every product.
func NewGetProductsQuery() GetProductsQuery {
	return GetProductsQuery{guard: guard.NewConstructorGuard()}
}

// NewGetProductsQueryForCategory creates a query narrowed to one category.
func NewGetProductsQueryForCategory(category string) (GetProductsQuery, error) {
	if category == "" {
		return GetProductsQuery{}, errs.NewValueIsRequiredError("category")
	}

	return GetProductsQuery{
		category:    category,
		hasCategory: true,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through a constructor.
func (q GetProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsQueryIsNotConstructed)
}

// Category returns the category filter and whether one was requested.
func (q GetProductsQuery) Category() (string, bool) {
	return q.category, q.hasCategory
}
