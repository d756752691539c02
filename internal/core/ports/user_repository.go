package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user entities.
type UserRepository interface {
	// Add persists a new user and assigns it the next sequential identifier.
	Add(ctx context.Context, entity *user.User) error

	// Update overwrites the stored record for the entity's identifier.
	// Returns an ObjectNotFoundError if no such user exists.
	Update(ctx context.Context, entity *user.User) error

	// Get retrieves a user by identifier.
	// Returns an ObjectNotFoundError if no such user exists.
	Get(ctx context.Context, id kernel.ID) (*user.User, error)

	// GetAll retrieves all users in insertion order.
	GetAll(ctx context.Context) ([]*user.User, error)

	// Remove deletes a user by identifier.
	// Returns an ObjectNotFoundError if no such user exists.
	Remove(ctx context.Context, id kernel.ID) error
}
