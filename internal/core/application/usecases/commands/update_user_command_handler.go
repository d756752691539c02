package commands

import (
	"context"

	"shop/internal/core/domain/model/user"
)

// UpdateUserCommandHandler applies partial updates to user records.
type UpdateUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewUpdateUserCommandHandler creates a handler for user updates.
func NewUpdateUserCommandHandler(uowFactory UserUoWFactory) UpdateUserCommandHandler {
	return UpdateUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the user, applies the explicit field merge, and persists the
// result. Fails with an ObjectNotFoundError if the user does not exist.
func (h *UpdateUserCommandHandler) Handle(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	existing, err := userRepo.Get(ctx, cmd.UserID())
	if err != nil {
		return nil, err
	}

	if err = existing.Patch(cmd.Name(), cmd.Email(), cmd.Role()); err != nil {
		return nil, err
	}

	if err = userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return existing, nil
}
