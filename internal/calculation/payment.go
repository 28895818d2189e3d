package calculation

import (
	"fmt"
	"math"
	"strconv"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// StandardPayment returns the fixed periodic payment that retires principal over
// years*paymentsPerYear periods at the given annual percentage rate:
//
//	r = (ratePercent/100) / paymentsPerYear
//	n = years * paymentsPerYear
//	payment = principal * r(1+r)^n / ((1+r)^n - 1)
//
// rounded to cents. principal, years and ratePercent accept strings, ints, floats
// or decimals. A zero rate is reported as ErrZeroDenominator rather than falling
// back to principal/n.
func StandardPayment(principal, years, ratePercent any, paymentsPerYear int) (domain.PaymentAmount, error) {
	params, err := loanParameters(principal, years, ratePercent, paymentsPerYear)
	if err != nil {
		return decimal.Zero, newDataError("standard payment", err)
	}
	payment, err := standardPayment(params)
	if err != nil {
		return decimal.Zero, newDataError("standard payment", err)
	}
	return payment, nil
}

// AcceleratedPayment returns the monthly payment for the same loan divided by 4
// (52 payments per year) or by 2 (26 payments per year). The quotient is taken
// in float64 and formatted to two places, so a half cent rounds by its binary
// value: 584.63/2 gives 292.31, not 292.32.
// Paying the monthly-equivalent amount more often is what shortens the loan.
func AcceleratedPayment(principal, years, ratePercent any, paymentsPerYear int) (domain.PaymentAmount, error) {
	params, err := loanParameters(principal, years, ratePercent, paymentsPerYear)
	if err != nil {
		return decimal.Zero, newDataError("accelerated payment", err)
	}
	payment, err := acceleratedPayment(params)
	if err != nil {
		return decimal.Zero, newDataError("accelerated payment", err)
	}
	return payment, nil
}

func standardPayment(p domain.LoanParameters) (decimal.Decimal, error) {
	if p.PaymentsPerYear <= 0 {
		return decimal.Zero, ErrNonPositiveFrequency
	}

	// float64 for the power term, decimal for the money
	periodicRate := p.AnnualRatePercent.InexactFloat64() / 100 / float64(p.PaymentsPerYear)
	factor := math.Pow(1+periodicRate, float64(p.TotalPeriods()))
	denominator := factor - 1
	if denominator == 0 {
		return decimal.Zero, ErrZeroDenominator
	}

	payment := p.Principal.InexactFloat64() * periodicRate * factor / denominator
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return decimal.Zero, ErrZeroDenominator
	}
	return money.NewMoney(payment).Round().Decimal, nil
}

func acceleratedPayment(p domain.LoanParameters) (decimal.Decimal, error) {
	monthly := p
	monthly.PaymentsPerYear = 12
	monthlyPayment, err := standardPayment(monthly)
	if err != nil {
		return decimal.Zero, err
	}

	var divisor float64
	switch p.PaymentsPerYear {
	case 52:
		divisor = 4
	case 26:
		divisor = 2
	default:
		return decimal.Zero, ErrUnsupportedAccelerated
	}

	quotient := strconv.FormatFloat(monthlyPayment.InexactFloat64()/divisor, 'f', 2, 64)
	payment, err := decimal.NewFromString(quotient)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: accelerated payment %q", ErrInputConversion, quotient)
	}
	return payment, nil
}

// paymentFor dispatches on the frequency's accelerated flag
func paymentFor(p domain.LoanParameters, f domain.PaymentFrequency) (decimal.Decimal, error) {
	if f.IsAccelerated() {
		return acceleratedPayment(p)
	}
	return standardPayment(p)
}
