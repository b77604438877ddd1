package kernel

import (
	"fmt"

	"farmmarket/internal/pkg/errs"
)

// Money represents a non-negative monetary amount in cents.
// Using integer cents avoids floating point drift when computing order totals
// and the farmer/dispatcher/platform split. The zero value (0 cents) is valid.
//
// Example:
//
//	price, _ := kernel.NewMoney(2550) // R25.50
//	total, _ := price.Multiply(3)
type Money struct {
	cents int64
}

// NewMoney creates a Money value from an amount in cents.
// Negative amounts are rejected with a ValueIsInvalidError.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%d cents is negative", cents))
	}
	return Money{cents: cents}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual reports whether two amounts are equal.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns the difference of two amounts.
// Returns an error when the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.cents - other.cents)
}

// Multiply returns the amount multiplied by a non-negative quantity.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is negative", quantity))
	}
	return Money{cents: m.cents * int64(quantity)}, nil
}

// Percent returns the given percentage of the amount, rounded down to a cent.
// Used for the platform fee cut of an order total.
func (m Money) Percent(percent int64) (Money, error) {
	if percent < 0 || percent > 100 {
		return Money{}, errs.NewValueIsOutOfRangeError("percent", percent, 0, 100)
	}
	return Money{cents: m.cents * percent / 100}, nil
}

// String formats the amount as a decimal with two fraction digits.
// Implements fmt.Stringer.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
