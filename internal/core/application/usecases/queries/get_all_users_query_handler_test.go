package queries_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedUser(t *testing.T, id int64, name, email, role string) *user.User {
	t.Helper()

	stored, err := user.RestoreUser(
		kernel.MustNewID(id),
		name,
		email,
		role,
		time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return stored
}

func TestNewGetAllUsersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllUsersQuery()
	require.NoError(t, query.Validate())
}

func TestGetAllUsersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllUsersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllUsersQueryIsNotConstructed)
}

func TestGetAllUsersQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	john := storedUser(t, 1, "John Doe", "john@example.com", "admin")
	jane := storedUser(t, 2, "Jane Smith", "jane@example.com", "user")

	repo := new(MockUserRepository)
	repo.On("GetAll", ctx).Return([]*user.User{john, jane}, nil).Once()

	h := queries.NewGetAllUsersQueryHandler(repo)
	responses, err := h.Handle(ctx, queries.NewGetAllUsersQuery())

	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "John Doe", responses[0].Name)
	assert.Equal(t, "jane@example.com", responses[1].Email)
	repo.AssertExpectations(t)
}

func TestGetUserQueryHandler_Handle_Found(t *testing.T) {
	ctx := t.Context()
	john := storedUser(t, 1, "John Doe", "john@example.com", "admin")

	repo := new(MockUserRepository)
	repo.On("Get", ctx, kernel.MustNewID(1)).Return(john, nil).Once()

	query, err := queries.NewGetUserQuery(kernel.MustNewID(1))
	require.NoError(t, err)

	h := queries.NewGetUserQueryHandler(repo)
	resp, err := h.Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID.Int64())
	assert.Equal(t, "admin", resp.Role)
}

func TestGetUserQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	repo := new(MockUserRepository)
	repo.On("Get", ctx, kernel.MustNewID(42)).
		Return(nil, errs.NewObjectNotFoundError("userID", "42")).Once()

	query, err := queries.NewGetUserQuery(kernel.MustNewID(42))
	require.NoError(t, err)

	h := queries.NewGetUserQueryHandler(repo)
	_, err = h.Handle(ctx, query)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
