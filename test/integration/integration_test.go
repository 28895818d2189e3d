package integration

import (
	"context"
	"testing"

	"github.com/rpgo/mortgage-calculator/internal/calculation"
	"github.com/rpgo/mortgage-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndToEndCalculation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_loan.yaml")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Scenarios, 2)

	engine := calculation.NewCalculationEngine()
	comparison, err := engine.RunScenarios(context.Background(), cfg.AllLoans())
	require.NoError(t, err)
	require.Len(t, comparison.Results, 3)

	monthly, biweekly, weekly := comparison.Results[0], comparison.Results[1], comparison.Results[2]
	assert.Equal(t, "954.83", monthly.Payment.StringFixed(2))
	assert.Equal(t, "477.42", biweekly.Payment.StringFixed(2))
	assert.Equal(t, "238.71", weekly.Payment.StringFixed(2))

	assert.Len(t, monthly.Schedule, 360)
	assert.Len(t, biweekly.Schedule, 673)
	assert.Len(t, weekly.Schedule, 1345)
	assert.Equal(t, "143739.21", monthly.Summary.TotalInterest.StringFixed(2))
	assert.Equal(t, "121183.32", biweekly.Summary.TotalInterest.StringFixed(2))
	assert.Equal(t, "121059.86", weekly.Summary.TotalInterest.StringFixed(2))

	best, ok := comparison.LowestTotalInterest()
	require.True(t, ok)
	assert.Equal(t, "Accelerated weekly", best.Input.Name)
}

func TestStandardPaymentAmortizesLoan(t *testing.T) {
	payment, err := calculation.StandardPayment("200000", "30", "4.00", 12)
	require.NoError(t, err)

	schedule, ok := calculation.ProjectSchedule("200000", "30", "4.00", 12, payment)
	require.True(t, ok)
	require.Len(t, schedule, 360)

	last, _ := schedule.Last()
	assert.InDelta(t, 0, last.EndingBalance().InexactFloat64(), 1.0)
	assert.True(t, last.CumulativePrincipal.Add(last.EndingBalance()).Equal(schedule[0].StartingBalance))
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()

	cfg, err := parser.LoadFromFile("../testdata/example_loan.yaml")
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Loan.Frequency = "Noncely"
	assert.Error(t, parser.ValidateConfiguration(cfg))
}
