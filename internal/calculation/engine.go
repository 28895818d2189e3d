package calculation

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	money "github.com/rpgo/mortgage-calculator/pkg/decimal"
	"github.com/rpgo/mortgage-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// CalculationEngine turns raw loan input into a payment amount and schedule.
// It holds no results between calls; every Recalculate rebuilds everything.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// ParseLoanInput converts raw input strings into loan parameters and the payment frequency.
// "$200,000" and "4.00%" are accepted as typed.
func ParseLoanInput(input domain.LoanInput) (domain.LoanParameters, domain.PaymentFrequency, error) {
	principal, err := money.ParseMoneyInput(input.Principal)
	if err != nil {
		return domain.LoanParameters{}, domain.FrequencyUnknown, newDataError("parse input",
			fmt.Errorf("%w: principal %q", ErrInputConversion, input.Principal))
	}
	rate, err := money.ParsePercentInput(input.InterestRate)
	if err != nil {
		return domain.LoanParameters{}, domain.FrequencyUnknown, newDataError("parse input",
			fmt.Errorf("%w: interest rate %q", ErrInputConversion, input.InterestRate))
	}
	years, err := strconv.Atoi(strings.TrimSpace(input.Amortization))
	if err != nil {
		return domain.LoanParameters{}, domain.FrequencyUnknown, newDataError("parse input",
			fmt.Errorf("%w: amortization %q", ErrInputConversion, input.Amortization))
	}
	frequency, ok := domain.ParseFrequency(input.Frequency)
	if !ok {
		return domain.LoanParameters{}, domain.FrequencyUnknown, newDataError("parse input",
			fmt.Errorf("%w: %q", ErrUnknownFrequency, input.Frequency))
	}

	return domain.LoanParameters{
		Principal:         principal.Decimal,
		AmortizationYears: years,
		AnnualRatePercent: rate,
		PaymentsPerYear:   frequency.PaymentsPerYear(),
	}, frequency, nil
}

// Recalculate runs the full pipeline for one loan input
func (ce *CalculationEngine) Recalculate(input domain.LoanInput) (*domain.AmortizationResult, error) {
	params, frequency, err := ParseLoanInput(input)
	if err != nil {
		ce.Logger.Warnf("rejecting loan input %+v: %v", input, err)
		return nil, err
	}
	firstPayment, err := dateutil.ParseDate(input.FirstPaymentDate)
	if err != nil {
		return nil, fmt.Errorf("first payment date: %w", err)
	}

	payment, err := paymentFor(params, frequency)
	if err != nil {
		ce.Logger.Warnf("payment calculation failed for %s: %v", frequency, err)
		return nil, newDataError("payment", err)
	}
	ce.Logger.Debugf("payment %s per period (%s, %d periods)", payment.StringFixed(2), frequency, params.TotalPeriods())

	schedule, ok := ProjectScheduleFrom(params, payment, firstPayment)
	if !ok {
		ce.Logger.Warnf("cannot project %d periods for %s", params.TotalPeriods(), frequency)
		return nil, newDataError("schedule", ErrScheduleTooLong)
	}

	result := &domain.AmortizationResult{
		Input:      input,
		Parameters: params,
		Frequency:  frequency,
		Payment:    payment,
		Schedule:   schedule,
		Summary:    summarize(params, schedule),
		Term:       domain.Term{Years: input.TermYears, Type: input.TermType},
	}
	if firstPayment != nil && input.TermYears > 0 {
		end := dateutil.AddYears(*firstPayment, input.TermYears)
		result.Term.EndDate = &end
	}

	if frequency.IsAccelerated() {
		ce.compareWithStandard(result)
	}
	if result.Summary.PaidOffEarly {
		ce.Logger.Infof("loan paid off after %d of %d payments", result.Summary.PaymentsMade, result.Summary.ScheduledPayments)
	}
	return result, nil
}

// compareWithStandard fills in what the non-accelerated frequency would cost
func (ce *CalculationEngine) compareWithStandard(result *domain.AmortizationResult) {
	standard, err := standardPayment(result.Parameters)
	if err != nil {
		ce.Logger.Debugf("no standard comparison for %s: %v", result.Frequency, err)
		return
	}
	schedule, ok := ProjectScheduleFrom(result.Parameters, standard, nil)
	if !ok {
		return
	}
	standardInterest := schedule.TotalInterest()
	saved := standardInterest.Sub(result.Summary.TotalInterest)
	result.Summary.StandardPayment = &standard
	result.Summary.StandardTotalInterest = &standardInterest
	result.Summary.InterestSaved = &saved
}

func summarize(params domain.LoanParameters, schedule domain.Schedule) domain.ScheduleSummary {
	summary := domain.ScheduleSummary{
		ScheduledPayments: params.TotalPeriods(),
		PaymentsMade:      len(schedule),
		PaidOffEarly:      schedule.PaidOffEarly(params.TotalPeriods()),
		TotalPaid:         schedule.TotalPaid(),
		TotalInterest:     schedule.TotalInterest(),
		FinalBalance:      decimal.Zero,
	}
	if last, ok := schedule.Last(); ok {
		summary.FinalBalance = last.EndingBalance()
		summary.PayoffDate = last.PaymentDate
	}
	return summary
}

// RunScenarios recalculates every scenario in order, stopping at the first failure
func (ce *CalculationEngine) RunScenarios(ctx context.Context, inputs []domain.LoanInput) (*domain.ScenarioComparison, error) {
	comparison := &domain.ScenarioComparison{Results: make([]domain.AmortizationResult, 0, len(inputs))}
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result, err := ce.Recalculate(input)
		if err != nil {
			return nil, fmt.Errorf("scenario %d (%s): %w", i, input.Name, err)
		}
		comparison.Results = append(comparison.Results, *result)
	}
	return comparison, nil
}
