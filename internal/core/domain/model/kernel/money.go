package kernel

import (
	"digisales/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for monetary amounts. It wraps a decimal so that
// cart totals and line totals stay exact: the sum of raw occurrence prices
// must equal the sum of count times price over the aggregated view, which
// floating point cannot guarantee.
//
// The zero value represents zero money and is valid. Negative amounts are
// rejected at construction.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidError("amount must not be negative")
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a decimal string such as "249.50".
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsEqual compares two amounts for numeric equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
