package memory

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// OrderRepository persists order aggregates in the shared store.
// Identifiers are assigned on Add from the store's monotonic counter, and
// listings come back in insertion order. Reads and writes exchange
// restored copies so callers never share mutable state with the store.
type OrderRepository struct {
	store *Store
}

// NewOrderRepository creates an order repository over the given store.
func NewOrderRepository(store *Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Add persists a new order and assigns it the next sequential identifier.
func (r *OrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := kernel.MustNewID(r.store.nextOrderID)
	if err := aggregate.AssignID(id); err != nil {
		return err
	}
	r.store.nextOrderID++

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.store.orders[id.Int64()] = stored
	r.store.orderIDs = append(r.store.orderIDs, id.Int64())
	return nil
}

// Update overwrites the stored record for the aggregate's identifier.
func (r *OrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := aggregate.ID().Int64()
	if _, ok := r.store.orders[key]; !ok {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID().String())
	}

	stored, err := cloneOrder(aggregate)
	if err != nil {
		return err
	}

	r.store.orders[key] = stored
	return nil
}

// Get retrieves an order by its identifier.
func (r *OrderRepository) Get(_ context.Context, id kernel.ID) (*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.orders[id.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id.String())
	}

	return cloneOrder(stored)
}

// GetAll retrieves all orders in insertion order.
func (r *OrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0, len(r.store.orderIDs))
	for _, key := range r.store.orderIDs {
		restored, err := cloneOrder(r.store.orders[key])
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}

	return orders, nil
}

// GetByOwner retrieves the orders belonging to the given user, preserving
// their relative insertion order. An owner with no orders yields an empty
// slice.
func (r *OrderRepository) GetByOwner(_ context.Context, ownerID kernel.ID) ([]*order.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]*order.Order, 0)
	for _, key := range r.store.orderIDs {
		stored := r.store.orders[key]
		if !stored.OwnerID().IsEqual(ownerID) {
			continue
		}

		restored, err := cloneOrder(stored)
		if err != nil {
			return nil, err
		}
		orders = append(orders, restored)
	}

	return orders, nil
}

// cloneOrder rebuilds an order so store and caller never share an aggregate.
func cloneOrder(o *order.Order) (*order.Order, error) {
	return order.RestoreOrder(
		o.ID(),
		o.OwnerID(),
		o.Lines(),
		o.TotalAmount(),
		o.Status(),
		o.CreatedAt(),
		o.UpdatedAt(),
	)
}
