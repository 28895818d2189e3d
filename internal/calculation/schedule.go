package calculation

import (
	"time"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ProjectSchedule builds the full amortization table for a loan paying the
// given fixed amount every period. It reports false when an input does not
// convert or paymentsPerYear is not positive. Loans longer than
// MaxSchedulePeriods periods also report false.
//
// Each row shows the balance at the start of its period. Projection stops after
// the last scheduled period, or right after the first row that takes the
// balance below zero; that final row is left as computed, not clamped.
func ProjectSchedule(principal, years, ratePercent any, paymentsPerYear int, payment any) (domain.Schedule, bool) {
	params, err := loanParameters(principal, years, ratePercent, paymentsPerYear)
	if err != nil {
		return nil, false
	}
	amount, err := toDecimal("payment amount", payment)
	if err != nil {
		return nil, false
	}
	return ProjectScheduleFrom(params, amount, nil)
}

// MaxSchedulePeriods bounds the number of periods a schedule may be projected over
const MaxSchedulePeriods = 1 << 20

// rows are appended past this capacity instead of preallocated
const scheduleCapacityHint = 4096

// ProjectScheduleFrom is ProjectSchedule for already-converted parameters.
// When firstPaymentDate is set, rows are stamped with due dates stepping by
// the frequency implied by PaymentsPerYear. More than MaxSchedulePeriods
// scheduled periods reports false.
func ProjectScheduleFrom(params domain.LoanParameters, payment decimal.Decimal, firstPaymentDate *time.Time) (domain.Schedule, bool) {
	if params.PaymentsPerYear <= 0 {
		return nil, false
	}
	if params.AmortizationYears > MaxSchedulePeriods/params.PaymentsPerYear {
		return nil, false
	}

	rate := params.PeriodicRate()
	periods := params.TotalPeriods()
	if periods < 0 {
		periods = 0
	}
	months, days := stepFor(params.PaymentsPerYear)

	balance := params.Principal
	totalPrincipal := decimal.Zero
	totalInterest := decimal.Zero
	schedule := make(domain.Schedule, 0, min(periods, scheduleCapacityHint))

	for number := 1; number <= periods; number++ {
		interest := balance.Mul(rate).Round(domain.RatePrecision)
		principalPortion := payment.Sub(interest)
		totalInterest = totalInterest.Add(interest)
		totalPrincipal = totalPrincipal.Add(principalPortion)

		row := domain.ScheduleRow{
			PaymentNumber:       number,
			StartingBalance:     balance,
			PaymentAmount:       payment,
			PrincipalPortion:    principalPortion,
			InterestPortion:     interest,
			CumulativePrincipal: totalPrincipal,
			CumulativeInterest:  totalInterest,
		}
		if firstPaymentDate != nil {
			due := dateutil.PaymentDate(*firstPaymentDate, number-1, months, days)
			row.PaymentDate = &due
		}
		schedule = append(schedule, row)

		balance = balance.Sub(principalPortion)
		if balance.IsNegative() {
			break
		}
	}

	return schedule, true
}

func stepFor(paymentsPerYear int) (months, days int) {
	for _, f := range domain.Frequencies() {
		if f.PaymentsPerYear() == paymentsPerYear {
			return f.PeriodStep()
		}
	}
	// uncommon cadences fall back to an even split of the year
	return 0, 365 / paymentsPerYear
}
