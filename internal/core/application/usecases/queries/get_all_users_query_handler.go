package queries

import (
	"context"

	"shop/internal/core/ports"
)

// GetAllUsersQueryHandler lists users from the registry.
type GetAllUsersQueryHandler struct {
	users ports.UserRepository
}

// NewGetAllUsersQueryHandler creates a handler for user listings.
func NewGetAllUsersQueryHandler(users ports.UserRepository) GetAllUsersQueryHandler {
	return GetAllUsersQueryHandler{users: users}
}

// Handle executes the query. An empty registry yields an empty slice.
func (h GetAllUsersQueryHandler) Handle(ctx context.Context, query GetAllUsersQuery) ([]UserResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	found, err := h.users.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]UserResponse, 0, len(found))
	for _, u := range found {
		responses = append(responses, NewUserResponse(u))
	}

	return responses, nil
}
