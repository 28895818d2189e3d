package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a plain numeric string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// ParseMoneyInput parses an amount as typed by a user, e.g. "$200,000" or " 1500.50 ".
func ParseMoneyInput(value string) (Money, error) {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(value))
	return NewMoneyFromString(strings.TrimSpace(cleaned))
}

// ParsePercentInput parses a percentage as typed by a user, e.g. "4.00%".
// The result stays in percent units (4.00, not 0.04).
func ParsePercentInput(value string) (decimal.Decimal, error) {
	cleaned := strings.TrimSpace(strings.ReplaceAll(strings.TrimSpace(value), "%", ""))
	return decimal.NewFromString(cleaned)
}

// Round rounds the money amount to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// String returns the amount with exactly two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount with a leading currency symbol
func (m Money) Format() string {
	return "$" + m.String()
}
