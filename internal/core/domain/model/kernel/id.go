package kernel

import (
	"fmt"
	"strconv"

	"shop/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when attempting to use an improperly initialized ID.
// IDs must be created using the NewID constructor to ensure validity.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError(
	"id must be created via NewID constructor")

// ID represents a validated entity identifier.
// It is an immutable value object wrapping a positive integer. Identifiers
// are assigned by the store at creation time and never change afterwards.
// The zero value of ID is invalid and will fail validation - use NewID to
// create instances.
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(id) // Output: 42
type ID struct {
	value int64
}

// NewID creates a new ID from the given integer value.
// The value must be positive; zero and negative values are rejected so that
// uninitialized identifiers can never masquerade as valid ones.
//
// Returns:
//   - ID: A valid identifier instance
//   - error: Validation error if the value is not positive
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID creates a new ID and panics if the value is invalid.
// Intended for fixtures and tests where the value is known to be valid.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// Validate checks if the ID was properly constructed.
// The zero value of ID is invalid and will fail this validation.
func (i ID) Validate() error {
	if i.value <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// IsEqual compares two identifiers by value.
func (i ID) IsEqual(other ID) bool {
	return i.value == other.value
}

// Int64 returns the raw integer value of the identifier.
func (i ID) Int64() int64 {
	return i.value
}

// String returns the decimal string representation of the identifier.
// It implements the fmt.Stringer interface.
func (i ID) String() string {
	return strconv.FormatInt(i.value, 10)
}
