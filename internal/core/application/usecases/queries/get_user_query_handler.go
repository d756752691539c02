package queries

import (
	"context"

	"shop/internal/core/ports"
)

// GetUserQueryHandler retrieves a single user from the registry.
type GetUserQueryHandler struct {
	users ports.UserRepository
}

// NewGetUserQueryHandler creates a handler for single-user queries.
func NewGetUserQueryHandler(users ports.UserRepository) GetUserQueryHandler {
	return GetUserQueryHandler{users: users}
}

// Handle executes the query. Fails with an ObjectNotFoundError if no user
// exists under the requested id.
func (h GetUserQueryHandler) Handle(ctx context.Context, query GetUserQuery) (UserResponse, error) {
	if err := query.Validate(); err != nil {
		return UserResponse{}, err
	}

	found, err := h.users.Get(ctx, query.UserID())
	if err != nil {
		return UserResponse{}, err
	}

	return NewUserResponse(found), nil
}
