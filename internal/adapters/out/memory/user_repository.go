package memory

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"
)

// UserRepository persists user records in the shared store.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a user repository over the given store.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Add persists a new user and assigns it the next sequential identifier.
func (r *UserRepository) Add(_ context.Context, entity *user.User) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id := kernel.MustNewID(r.store.nextUserID)
	if err := entity.AssignID(id); err != nil {
		return err
	}
	r.store.nextUserID++

	stored, err := cloneUser(entity)
	if err != nil {
		return err
	}

	r.store.users[id.Int64()] = stored
	r.store.userIDs = append(r.store.userIDs, id.Int64())
	return nil
}

// Update overwrites the stored record for the user's identifier.
func (r *UserRepository) Update(_ context.Context, entity *user.User) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := entity.ID().Int64()
	if _, ok := r.store.users[key]; !ok {
		return errs.NewObjectNotFoundError("userID", entity.ID().String())
	}

	stored, err := cloneUser(entity)
	if err != nil {
		return err
	}

	r.store.users[key] = stored
	return nil
}

// Get retrieves a user by its identifier.
func (r *UserRepository) Get(_ context.Context, id kernel.ID) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	stored, ok := r.store.users[id.Int64()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("userID", id.String())
	}

	return cloneUser(stored)
}

// GetAll retrieves all users in insertion order.
func (r *UserRepository) GetAll(_ context.Context) ([]*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := make([]*user.User, 0, len(r.store.userIDs))
	for _, key := range r.store.userIDs {
		restored, err := cloneUser(r.store.users[key])
		if err != nil {
			return nil, err
		}
		users = append(users, restored)
	}

	return users, nil
}

// Remove deletes a user. The freed identifier is never reissued: the
// counter keeps moving forward regardless of removals.
func (r *UserRepository) Remove(_ context.Context, id kernel.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := id.Int64()
	if _, ok := r.store.users[key]; !ok {
		return errs.NewObjectNotFoundError("userID", id.String())
	}

	delete(r.store.users, key)
	for i, stored := range r.store.userIDs {
		if stored == key {
			r.store.userIDs = append(r.store.userIDs[:i], r.store.userIDs[i+1:]...)
			break
		}
	}

	return nil
}

func cloneUser(u *user.User) (*user.User, error) {
	return user.RestoreUser(u.ID(), u.Name(), u.Email(), u.Role(), u.CreatedAt())
}
