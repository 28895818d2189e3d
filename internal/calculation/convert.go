package calculation

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// toDecimal converts loosely typed input (strings from a form, plain numbers) to a decimal
func toDecimal(field string, value any) (decimal.Decimal, error) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", ErrInputConversion, field, v)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, fmt.Errorf("%w: %s %v is not finite", ErrInputConversion, field, v)
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		return toDecimal(field, float64(v))
	}
	return decimal.Zero, fmt.Errorf("%w: %s has unsupported type %T", ErrInputConversion, field, value)
}

// toInt converts loosely typed input to an int. Floats must be integral.
func toInt(field string, value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q is not an integer", ErrInputConversion, field, v)
		}
		return n, nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, fmt.Errorf("%w: %s %v is not an integer", ErrInputConversion, field, v)
		}
		return int(v), nil
	case decimal.Decimal:
		if !v.Equal(v.Truncate(0)) {
			return 0, fmt.Errorf("%w: %s %s is not an integer", ErrInputConversion, field, v)
		}
		return int(v.IntPart()), nil
	}
	return 0, fmt.Errorf("%w: %s has unsupported type %T", ErrInputConversion, field, value)
}

func loanParameters(principal, years, ratePercent any, paymentsPerYear int) (domain.LoanParameters, error) {
	p, err := toDecimal("principal", principal)
	if err != nil {
		return domain.LoanParameters{}, err
	}
	y, err := toInt("amortization years", years)
	if err != nil {
		return domain.LoanParameters{}, err
	}
	r, err := toDecimal("interest rate", ratePercent)
	if err != nil {
		return domain.LoanParameters{}, err
	}
	return domain.LoanParameters{
		Principal:         p,
		AmortizationYears: y,
		AnnualRatePercent: r,
		PaymentsPerYear:   paymentsPerYear,
	}, nil
}
