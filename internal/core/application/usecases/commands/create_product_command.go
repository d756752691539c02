package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name        string
	description string
	price       kernel.Money
	category    string
	inStock     bool

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// The name is required; the price is non-negative by construction of Money.
func NewCreateProductCommand(
	name, description string,
	price kernel.Money,
	category string,
	inStock bool,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description: description,
		price:       price,
		category:    category,
		inStock:     inStock,
		guard:       guard.NewConstructorGuard(),
	}

	if err := productCommand.setName(name); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string { return c.name }

// Description returns the product description.
func (c CreateProductCommand) Description() string { return c.description }

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money { return c.price }

// Category returns the product category.
func (c CreateProductCommand) Category() string { return c.category }

// InStock reports whether the product is in stock.
func (c CreateProductCommand) InStock() bool { return c.inStock }

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
