package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrUpdateUserCommandIsNotConstructed = errors.New(
	"UpdateUserCommand must be created via NewUpdateUserCommand constructor",
)

// UpdateUserCommand represents a partial update of a user record.
// Nil fields leave the corresponding attribute unchanged; the merge is
// explicit field-by-field rather than a dynamic map merge, so the update
// surface cannot widen accidentally.
type UpdateUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.ID
	name   *string
	email  *string
	role   *string

	guard guard.ConstructorGuard
}

// NewUpdateUserCommand creates a command carrying an explicit partial update.
func NewUpdateUserCommand(userID kernel.ID, name, email, role *string) (UpdateUserCommand, error) {
	userCommand := UpdateUserCommand{
		name:  name,
		email: email,
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := userCommand.setUserID(userID); err != nil {
		return UpdateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateUserCommand) Validate() error {
	return c.guard.Validate(ErrUpdateUserCommandIsNotConstructed)
}

// UserID returns the identifier of the user to update.
func (c UpdateUserCommand) UserID() kernel.ID { return c.userID }

// Name returns the new display name, or nil to keep the current one.
func (c UpdateUserCommand) Name() *string { return c.name }

// Email returns the new email address, or nil to keep the current one.
func (c UpdateUserCommand) Email() *string { return c.email }

// Role returns the new role, or nil to keep the current one.
func (c UpdateUserCommand) Role() *string { return c.role }

func (c *UpdateUserCommand) setUserID(userID kernel.ID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}
