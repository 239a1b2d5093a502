package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places kept for prices and totals.
const MoneyScale = 2

// Money is a non-negative amount kept at cent precision. The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rounds d to MoneyScale places and rejects negative amounts.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is less than 0", d.String()),
		)
	}
	return Money{amount: d.Round(MoneyScale)}, nil
}

// MoneyFromFloat converts a JSON number. Floats are parsed through their shortest
// decimal representation, so 24.99 stays 24.99.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul multiplies by a quantity and rounds back to cent precision.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(MoneyScale)}
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 is the value written to JSON responses.
func (m Money) Float64() float64 {
	return m.amount.Round(MoneyScale).InexactFloat64()
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// String formats with exactly two decimals, e.g. "34.97".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}
