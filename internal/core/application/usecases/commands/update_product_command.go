package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a partial update of a catalog product.
// Nil fields leave the corresponding attribute unchanged. Price changes
// never affect existing orders, which carry creation-time snapshots.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.ID
	name        *string
	description *string
	price       *kernel.Money
	category    *string
	inStock     *bool

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command carrying an explicit partial
// update of a product.
func NewUpdateProductCommand(
	productID kernel.ID,
	name, description *string,
	price *kernel.Money,
	category *string,
	inStock *bool,
) (UpdateProductCommand, error) {
	productCommand := UpdateProductCommand{
		name:        name,
		description: description,
		price:       price,
		category:    category,
		inStock:     inStock,
		guard:       guard.NewConstructorGuard(),
	}

	if err := productCommand.setProductID(productID); err != nil {
		return UpdateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() kernel.ID { return c.productID }

// Name returns the new name, or nil to keep the current one.
func (c UpdateProductCommand) Name() *string { return c.name }

// Description returns the new description, or nil to keep the current one.
func (c UpdateProductCommand) Description() *string { return c.description }

// Price returns the new unit price, or nil to keep the current one.
func (c UpdateProductCommand) Price() *kernel.Money { return c.price }

// Category returns the new category, or nil to keep the current one.
func (c UpdateProductCommand) Category() *string { return c.category }

// InStock returns the new stock flag, or nil to keep the current one.
func (c UpdateProductCommand) InStock() *bool { return c.inStock }

func (c *UpdateProductCommand) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
