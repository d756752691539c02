package memory

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/product"
	"shop/internal/pkg/errs"
)

// ProductRepository persists catalog products in the shared store.
type ProductRepository struct {
	store *Store
}

// NewProductRepository creates a product repository over the given store.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// Add persists a new product and assigns it the next sequential identifier.
func (r *ProductRepository) Add(_ context.Context, entity *product.Product) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := kernel.MustNewID(r.store.nextProductID)
	if err := entity.AssignID(id); err != nil {
		return err
	}
	r.store.nextProductID++

	stored, err := cloneProduct(entity)
	if err != nil {
		return err
	}

	r.store.products[id.Int64()] = stored
	r.store.productIDs = append(r.store.productIDs, id.Int64())
	return nil
}

// Update overwrites the stored record for the product's identifier.
func (r *ProductRepository) Update(_ context.Context, entity *product.Product) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := entity.ID().Int64()
	if _, ok := r.store.products[key]; !ok {
		return errs.NewObjectNotFoundError("productID", entity.ID().String())
	}

	stored, err := cloneProduct(entity)
	if err != nil {
		return err
	}

	r.store.products[key] = stored
	return nil
}

// Get retrieves a product by its identifier.
func (r *ProductRepository) Get(_ context.Context, id kernel.ID) (*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.products[id.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("productID", id.String())
	}

	return cloneProduct(stored)
}

// GetAll retrieves all products in insertion order.
func (r *ProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*product.Product, 0, len(r.store.productIDs))
	for _, key := range r.store.productIDs {
		restored, err := cloneProduct(r.store.products[key])
		if err != nil {
			return nil, err
		}
		products = append(products, restored)
	}

	return products, nil
}

// GetByCategory retrieves the products in the given category, preserving
// their relative insertion order. An unknown category yields an empty
// slice.
func (r *ProductRepository) GetByCategory(_ context.Context, category string) ([]*product.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*product.Product, 0)
	for _, key := range r.store.productIDs {
		stored := r.store.products[key]
		if stored.Category() != category {
			continue
		}

		restored, err := cloneProduct(stored)
		if err != nil {
			return nil, err
		}
		products = append(products, restored)
	}

	return products, nil
}

// Remove deletes a product. The freed identifier is never reissued.
func (r *ProductRepository) Remove(_ context.Context, id kernel.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := id.Int64()
	if _, ok := r.store.products[key]; !ok {
		return errs.NewObjectNotFoundError("productID", id.String())
	}

	delete(r.store.products, key)
	for i, stored := range r.store.productIDs {
		if stored == key {
			r.store.productIDs = append(r.store.productIDs[:i], r.store.productIDs[i+1:]...)
			break
		}
	}

	return nil
}

func cloneProduct(p *product.Product) (*product.Product, error) {
	return product.RestoreProduct(
		p.ID(),
		p.Name(),
		p.Description(),
		p.Price(),
		p.Category(),
		p.InStock(),
		p.CreatedAt(),
	)
}
