package commands

import (
	"errors"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand represents a request to register a new user.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	name  string
	email string
	role  string

	guard guard.ConstructorGuard
}

// NewCreateUserCommand creates a command to register a new user.
// Name and email are required; the role may be empty.
func NewCreateUserCommand(name, email, role string) (CreateUserCommand, error) {
	userCommand := CreateUserCommand{
		role:  role,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		userCommand.setName(name),
		userCommand.setEmail(email),
	); err != nil {
		return CreateUserCommand{}, err
	}

	return userCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

// Name returns the user's display name.
func (c CreateUserCommand) Name() string { return c.name }

// Email returns the user's email address.
func (c CreateUserCommand) Email() string { return c.email }

// Role returns the user's role.
func (c CreateUserCommand) Role() string { return c.role }

func (c *CreateUserCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
