package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a single user by its identifier.
type GetUserQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query to retrieve a user by id.
func NewGetUserQuery(userID kernel.ID) (GetUserQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the user to retrieve.
func (q GetUserQuery) UserID() kernel.ID {
	return q.userID
}

// UserResponse represents user information for read results.
type UserResponse struct {
	ID        kernel.ID
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
}

// NewUserResponse maps a user entity to its read representation.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID(),
		Name:      u.Name(),
		Email:     u.Email(),
		Role:      u.Role(),
		CreatedAt: u.CreatedAt(),
	}
}
