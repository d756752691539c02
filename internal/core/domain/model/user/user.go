// Package user provides the User entity of the shop's user registry.
package user

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through a factory method.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User represents a registered user of the shop.
// The identifier is assigned by the store on insert and immutable afterwards.
type User struct {
	id            kernel.ID
	name          string
	email         string
	role          string
	createdAt     time.Time
	isConstructed bool
}

// NewUser creates a new User with validated fields. The identifier is left
// unassigned; the store sets it on insert via AssignID.
func NewUser(name, email, role string, now time.Time) (*User, error) {
	u := &User{
		role:          role,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setName(name),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persisted state.
func RestoreUser(id kernel.ID, name, email, role string, createdAt time.Time) (*User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	u, err := NewUser(name, email, role, createdAt)
	if err != nil {
		return nil, err
	}

	u.id = id
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// AssignID sets the store-assigned identifier. It fails if the user already
// carries one.
func (u *User) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if u.id.Validate() == nil {
		return errors.New("user id is already assigned")
	}
	u.id = id
	return nil
}

// ID returns the user's identifier.
func (u *User) ID() kernel.ID { return u.id }

// Name returns the user's display name.
func (u *User) Name() string { return u.name }

// Email returns the user's email address.
func (u *User) Email() string { return u.email }

// Role returns the user's role.
func (u *User) Role() string { return u.role }

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// Patch applies a partial update with an explicit field-by-field merge.
// Nil pointers leave the corresponding field untouched; supplied values are
// validated the same way the constructor validates them. Identifier and
// creation time cannot be changed.
func (u *User) Patch(name, email, role *string) error {
	if name != nil {
		if err := u.setName(*name); err != nil {
			return err
		}
	}
	if email != nil {
		if err := u.setEmail(*email); err != nil {
			return err
		}
	}
	if role != nil {
		u.role = *role
	}
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	u.email = email
	return nil
}
