package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrDeleteUserCommandIsNotConstructed = errors.New(
	"DeleteUserCommand must be created via NewDeleteUserCommand constructor",
)

// DeleteUserCommand represents a request to remove a user from the registry.
type DeleteUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteUserCommand creates a command to remove the given user.
func NewDeleteUserCommand(userID kernel.ID) (DeleteUserCommand, error) {
	userCommand := DeleteUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := userCommand.setUserID(userID); err != nil {
		return DeleteUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteUserCommand) Validate() error {
	return c.guard.Validate(ErrDeleteUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to remove.
func (c DeleteUserCommand) UserID() kernel.ID { return c.userID }

func (c *DeleteUserCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
