package commands

import (
	"context"

	"shop/internal/core/domain/model/product"
)

// UpdateProductCommandHandler applies partial updates to catalog products.
type UpdateProductCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory ProductUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the product, applies the explicit field merge, and persists
// the result. Fails with an ObjectNotFoundError if the product does not
// exist.
func (h *UpdateProductCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateProductCommand,
) (*product.Product, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	productRepo := uow.ProductRepository()
	existing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if err = existing.Patch(cmd.Name(), cmd.Description(), cmd.Price(), cmd.Category(), cmd.InStock()); err != nil {
		return nil, err
	}

	if err = productRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
