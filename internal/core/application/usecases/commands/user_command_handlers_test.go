package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func restoredUser(t *testing.T, id int64) *user.User {
	t.Helper()

	restored, err := user.RestoreUser(
		kernel.MustNewID(id),
		"John Doe",
		"john@example.com",
		"admin",
		time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return restored
}

func TestCreateUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand("Jane Smith", "jane@example.com", "user")
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*user.User)
				require.NoError(t, u.AssignID(kernel.MustNewID(4)))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateUserCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID().Int64())
	assert.Equal(t, "Jane Smith", created.Name())
	assert.Equal(t, "jane@example.com", created.Email())
	assert.Equal(t, "user", created.Role())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateUserCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockUserUoWFactory)
	h := commands.NewCreateUserCommandHandler(factory)

	_, err := h.Handle(t.Context(), commands.CreateUserCommand{})
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateUserCommandHandler_Handle_PartialUpdate(t *testing.T) {
	tests := []struct {
		name          string
		patchName     *string
		patchEmail    *string
		patchRole     *string
		expectedName  string
		expectedEmail string
		expectedRole  string
	}{
		{
			name:          "only name changes",
			patchName:     strPtr("Johnny"),
			expectedName:  "Johnny",
			expectedEmail: "john@example.com",
			expectedRole:  "admin",
		},
		{
			name:          "email and role change",
			patchEmail:    strPtr("johnny@example.com"),
			patchRole:     strPtr("user"),
			expectedName:  "John Doe",
			expectedEmail: "johnny@example.com",
			expectedRole:  "user",
		},
		{
			name:          "no fields keeps everything",
			expectedName:  "John Doe",
			expectedEmail: "john@example.com",
			expectedRole:  "admin",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctx := t.Context()
			existing := restoredUser(t, 1)
			cmd, err := commands.NewUpdateUserCommand(
				kernel.MustNewID(1), test.patchName, test.patchEmail, test.patchRole)
			require.NoError(t, err)

			repo := new(MockUserRepository)
			uow := new(MockUserUoW)
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.On("UserRepository").Return(repo).Once(),
				repo.On("Get", ctx, kernel.MustNewID(1)).Return(existing, nil).Once(),
				repo.On("Update", ctx, existing).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			factory := new(MockUserUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewUpdateUserCommandHandler(factory)
			updated, err := h.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, test.expectedName, updated.Name())
			assert.Equal(t, test.expectedEmail, updated.Email())
			assert.Equal(t, test.expectedRole, updated.Role())
		})
	}
}

func TestUpdateUserCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateUserCommand(kernel.MustNewID(42), strPtr("Ghost"), nil, nil)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Get", ctx, kernel.MustNewID(42)).
			Return(nil, errs.NewObjectNotFoundError("userID", "42")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateUserCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteUserCommand(kernel.MustNewID(2))
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Remove", ctx, kernel.MustNewID(2)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteUserCommandHandler_Handle_UserNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteUserCommand(kernel.MustNewID(42))
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Remove", ctx, kernel.MustNewID(42)).
			Return(errs.NewObjectNotFoundError("userID", "42")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteUserCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
