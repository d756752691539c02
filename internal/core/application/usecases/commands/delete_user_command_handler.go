package commands

import (
	"context"
)

// DeleteUserCommandHandler removes users from the registry.
// Note that released identifiers are never reused: stores assign ids from a
// monotonic counter, not from the collection size.
type DeleteUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewDeleteUserCommandHandler creates a handler for user removal.
func NewDeleteUserCommandHandler(uowFactory UserUoWFactory) DeleteUserCommandHandler {
	return DeleteUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the user. Fails with an ObjectNotFoundError if the user
// does not exist.
func (h *DeleteUserCommandHandler) Handle(ctx context.Context, cmd DeleteUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.UserRepository().Remove(ctx, cmd.UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
