package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"shop/internal/pkg/errs"
)

// Money represents a non-negative monetary amount.
// It is an immutable value object backed by an arbitrary-precision decimal,
// so price arithmetic never suffers from binary floating point drift.
// The zero value represents a zero amount and is valid.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(1499.99)
//	if err != nil {
//	    // Handle validation error
//	}
//	total := price.MulInt(2)
//	fmt.Println(total) // Output: 2999.98
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money value representing a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromFloat creates a Money value from a float amount.
// Negative amounts are rejected: prices and totals are never negative.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoneyFromDecimal(decimal.NewFromFloat(amount))
}

// NewMoneyFromDecimal creates a Money value from a decimal amount.
// Negative amounts are rejected.
func NewMoneyFromDecimal(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// Add returns the sum of two monetary amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer factor.
// Used for line totals (unit price times quantity).
func (m Money) MulInt(factor int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(factor)))}
}

// IsEqual compares two monetary amounts by value.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64, as exposed on the JSON API.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the decimal string representation of the amount.
// It implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.String()
}
