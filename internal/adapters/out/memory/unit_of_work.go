package memory

import (
	"context"
	"errors"

	"shop/internal/core/ports"
)

// ErrNoActiveTransaction is returned when Commit is called without a
// preceding Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances over the shared store.
// Each business operation gets a fresh unit of work so concurrent commands
// queue up on the store's transaction lock instead of interleaving.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory bound to the given store.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork ready for a business transaction.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes a command's read-modify-write sequence against the
// store. Begin takes the store-wide transaction lock, so two commands can
// never interleave their loads and writes; repository writes apply
// immediately and Commit simply releases the lock. There is no undo log:
// handlers validate every step before writing, so a failed command releases
// the lock via Rollback without having written anything.
type UnitOfWork struct {
	store  *Store
	active bool
}

// Begin acquires the store's transaction lock. Calling Begin on an already
// active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.active {
		return nil
	}

	uow.store.txMu.Lock()
	uow.active = true
	return nil
}

// Commit releases the transaction lock, making the unit of work complete.
// Returns ErrNoActiveTransaction if Begin was never called.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.active = false
	uow.store.txMu.Unlock()
	return nil
}

// Rollback releases the transaction lock if one is still held.
// Rolling back after a successful commit is a no-op, which lets handlers
// keep a deferred Rollback as their cleanup path.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return nil
	}

	uow.active = false
	uow.store.txMu.Unlock()
	return nil
}

// OrderRepository returns an order repository bound to the store.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return NewOrderRepository(uow.store)
}

// UserRepository returns a user repository bound to the store.
func (uow *UnitOfWork) UserRepository() ports.UserRepository {
	return NewUserRepository(uow.store)
}

// ProductRepository returns a product repository bound to the store.
func (uow *UnitOfWork) ProductRepository() ports.ProductRepository {
	return NewProductRepository(uow.store)
}
