package calculation

import (
	"context"
	"testing"
	"time"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func monthlyInput() domain.LoanInput {
	return domain.LoanInput{
		Name:         "Monthly",
		Principal:    "$200,000",
		InterestRate: "4.00%",
		Amortization: "30",
		Frequency:    "Monthly",
	}
}

func TestParseLoanInput(t *testing.T) {
	params, frequency, err := ParseLoanInput(monthlyInput())
	require.NoError(t, err)
	assert.Equal(t, domain.Monthly, frequency)
	assert.Equal(t, "200000", params.Principal.String())
	assert.Equal(t, "4", params.AnnualRatePercent.String())
	assert.Equal(t, 30, params.AmortizationYears)
	assert.Equal(t, 12, params.PaymentsPerYear)
	assert.Equal(t, 360, params.TotalPeriods())
}

func TestParseLoanInput_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.LoanInput)
		cause  error
	}{
		{"principal", func(in *domain.LoanInput) { in.Principal = "$20,000f" }, ErrInputConversion},
		{"rate", func(in *domain.LoanInput) { in.InterestRate = "four" }, ErrInputConversion},
		{"amortization", func(in *domain.LoanInput) { in.Amortization = "30 years" }, ErrInputConversion},
		{"frequency", func(in *domain.LoanInput) { in.Frequency = "Noncely" }, ErrUnknownFrequency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := monthlyInput()
			tt.mutate(&in)
			_, _, err := ParseLoanInput(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.cause)
			assert.True(t, IsDataError(err))
		})
	}
}

func TestRecalculate_Monthly(t *testing.T) {
	engine := NewCalculationEngine()
	result, err := engine.Recalculate(monthlyInput())
	require.NoError(t, err)

	assert.Equal(t, "954.83", result.Payment.StringFixed(2))
	assert.Len(t, result.Schedule, 360)
	assert.Equal(t, 360, result.Summary.ScheduledPayments)
	assert.Equal(t, 360, result.Summary.PaymentsMade)
	assert.False(t, result.Summary.PaidOffEarly)
	assert.Equal(t, "343738.80", result.Summary.TotalPaid.StringFixed(2))
	assert.Equal(t, "143739.21", result.Summary.TotalInterest.StringFixed(2))
	assert.Equal(t, "0.41", result.Summary.FinalBalance.StringFixed(2))
	assert.Nil(t, result.Summary.InterestSaved)
	assert.Nil(t, result.Summary.PayoffDate)
}

func TestRecalculate_AcceleratedWeekly(t *testing.T) {
	engine := NewCalculationEngine()
	result, err := engine.Recalculate(domain.LoanInput{
		Principal:        "500000",
		InterestRate:     "5.22",
		Amortization:     "25",
		Frequency:        "Accelerated Weekly",
		TermYears:        5,
		TermType:         "Closed",
		FirstPaymentDate: "2025-01-06",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.AcceleratedWeekly, result.Frequency)
	assert.Equal(t, "746.85", result.Payment.StringFixed(2))
	assert.Equal(t, 1300, result.Summary.ScheduledPayments)
	assert.Equal(t, 1112, result.Summary.PaymentsMade)
	assert.True(t, result.Summary.PaidOffEarly)
	assert.Equal(t, "830497.20", result.Summary.TotalPaid.StringFixed(2))

	require.NotNil(t, result.Summary.StandardPayment)
	assert.Equal(t, "688.84", result.Summary.StandardPayment.StringFixed(2))
	require.NotNil(t, result.Summary.StandardTotalInterest)
	assert.Equal(t, "395491.55", result.Summary.StandardTotalInterest.StringFixed(2))
	require.NotNil(t, result.Summary.InterestSaved)
	assert.Equal(t, "65599.11", result.Summary.InterestSaved.StringFixed(2))

	first := time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, result.Summary.PayoffDate)
	assert.Equal(t, first.AddDate(0, 0, 7*1111), *result.Summary.PayoffDate)

	assert.Equal(t, 5, result.Term.Years)
	assert.Equal(t, "Closed", result.Term.Type)
	require.NotNil(t, result.Term.EndDate)
	assert.Equal(t, time.Date(2030, 1, 6, 0, 0, 0, 0, time.UTC), *result.Term.EndDate)
}

func TestRecalculate_DataErrorsAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	engine := NewCalculationEngine()
	engine.SetLogger(NewZapLogger(zap.New(core)))

	in := monthlyInput()
	in.InterestRate = "0%"
	result, err := engine.Recalculate(in)
	assert.Nil(t, result)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrZeroDenominator)
	assert.Equal(t, 1, logs.FilterLevelExact(zapcore.WarnLevel).Len())

	in = monthlyInput()
	in.FirstPaymentDate = "01/02/2025"
	_, err = engine.Recalculate(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "first payment date")
}

func TestRecalculate_AbsurdAmortization(t *testing.T) {
	engine := NewCalculationEngine()

	in := monthlyInput()
	in.Amortization = "1099511627776"
	result, err := engine.Recalculate(in)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrZeroDenominator)

	// a tiny rate keeps the payment finite, so the projection itself refuses
	in = monthlyInput()
	in.Amortization = "87382"
	in.InterestRate = "0.0001%"
	result, err = engine.Recalculate(in)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrScheduleTooLong)
	assert.True(t, IsDataError(err))
}

func TestRecalculate_RebuildsEveryCall(t *testing.T) {
	engine := NewCalculationEngine()
	a, err := engine.Recalculate(monthlyInput())
	require.NoError(t, err)

	changed := monthlyInput()
	changed.Frequency = "Accelerated Bi-Weekly"
	b, err := engine.Recalculate(changed)
	require.NoError(t, err)

	c, err := engine.Recalculate(monthlyInput())
	require.NoError(t, err)

	assert.Equal(t, "477.42", b.Payment.StringFixed(2))
	assert.Len(t, b.Schedule, 673)
	assert.Equal(t, a.Schedule, c.Schedule)
	assert.True(t, a.Payment.Equal(c.Payment))
}

func TestRunScenarios(t *testing.T) {
	engine := NewCalculationEngine()
	monthly := monthlyInput()
	accelerated := monthlyInput()
	accelerated.Name = "Accelerated"
	accelerated.Frequency = "Accelerated Bi-Weekly"

	comparison, err := engine.RunScenarios(context.Background(), []domain.LoanInput{monthly, accelerated})
	require.NoError(t, err)
	require.Len(t, comparison.Results, 2)

	best, ok := comparison.LowestTotalInterest()
	require.True(t, ok)
	assert.Equal(t, "Accelerated", best.Input.Name)

	broken := monthlyInput()
	broken.Name = "Broken"
	broken.Principal = "lots"
	_, err = engine.RunScenarios(context.Background(), []domain.LoanInput{monthly, broken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario 1 (Broken)")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.RunScenarios(ctx, []domain.LoanInput{monthly})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSetLogger_Nil(t *testing.T) {
	engine := NewCalculationEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
	assert.NotNil(t, NewZapLogger(nil))
}
