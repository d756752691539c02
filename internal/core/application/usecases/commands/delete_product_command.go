package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product from the
// catalog. Existing orders keep their price snapshots for removed products.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove the given product.
func NewDeleteProductCommand(productID kernel.ID) (DeleteProductCommand, error) {
	productCommand := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := productCommand.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c DeleteProductCommand) ProductID() kernel.ID { return c.productID }

func (c *DeleteProductCommand) setProductID(productID kernel.ID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
