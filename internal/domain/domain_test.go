package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		label       string
		expected    PaymentFrequency
		perYear     int
		accelerated bool
	}{
		{"Monthly", Monthly, 12, false},
		{"Bi-Weekly", BiWeekly, 26, false},
		{"Weekly", Weekly, 52, false},
		{"Accelerated Bi-Weekly", AcceleratedBiWeekly, 26, true},
		{"Accelerated Weekly", AcceleratedWeekly, 52, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			f, ok := ParseFrequency(tt.label)
			require.True(t, ok)
			assert.Equal(t, tt.expected, f)
			assert.Equal(t, tt.perYear, f.PaymentsPerYear())
			assert.Equal(t, tt.accelerated, f.IsAccelerated())
			assert.Equal(t, tt.label, f.Label())
			assert.Equal(t, tt.label, f.String())
		})
	}

	f, ok := ParseFrequency("Fortnightly")
	assert.False(t, ok)
	assert.Equal(t, FrequencyUnknown, f)
	assert.Equal(t, 0, f.PaymentsPerYear())
	assert.Equal(t, "Unknown", f.Label())
}

func TestFrequencyLabels(t *testing.T) {
	assert.Equal(t, []string{"Monthly", "Bi-Weekly", "Weekly", "Accelerated Bi-Weekly", "Accelerated Weekly"}, FrequencyLabels())
}

func TestFrequencyStandardAndStep(t *testing.T) {
	assert.Equal(t, BiWeekly, AcceleratedBiWeekly.Standard())
	assert.Equal(t, Weekly, AcceleratedWeekly.Standard())
	assert.Equal(t, Monthly, Monthly.Standard())

	months, days := Monthly.PeriodStep()
	assert.Equal(t, [2]int{1, 0}, [2]int{months, days})
	months, days = AcceleratedBiWeekly.PeriodStep()
	assert.Equal(t, [2]int{0, 14}, [2]int{months, days})
	months, days = Weekly.PeriodStep()
	assert.Equal(t, [2]int{0, 7}, [2]int{months, days})
}

func TestFrequencyMarshalText(t *testing.T) {
	b, err := json.Marshal(struct {
		F PaymentFrequency `json:"f"`
	}{AcceleratedWeekly})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":"Accelerated Weekly"}`, string(b))
}

func TestLoanParameters(t *testing.T) {
	lp := LoanParameters{
		Principal:         decimal.NewFromInt(200000),
		AmortizationYears: 30,
		AnnualRatePercent: decimal.RequireFromString("4.00"),
		PaymentsPerYear:   12,
	}
	assert.Equal(t, 360, lp.TotalPeriods())
	assert.Equal(t, "0.003333333333333333333333", lp.PeriodicRate().String())

	lp.AnnualRatePercent = decimal.RequireFromString("5.2")
	lp.PaymentsPerYear = 52
	assert.Equal(t, "0.001", lp.PeriodicRate().String())
}

func TestRateRecord_CompleteAndApply(t *testing.T) {
	full := NewRateRecord("RBC", decimal.RequireFromString("4.79"), "Fixed", 5, "Closed", 30)
	assert.True(t, full.Complete())

	in := LoanInput{Name: "Home", Principal: "$450,000", InterestRate: "6%", Amortization: "25", Frequency: "Weekly"}
	out, ok := full.ApplyTo(in)
	require.True(t, ok)
	assert.Equal(t, LoanInput{
		Name:         "Home",
		Principal:    "$450,000",
		InterestRate: "4.79%",
		Amortization: "30",
		Frequency:    "Weekly",
		TermYears:    5,
		TermType:     "Closed",
	}, out)

	precise := NewRateRecord("RBC", decimal.RequireFromString("4.125"), "Fixed", 3, "Closed", 25)
	out, ok = precise.ApplyTo(LoanInput{})
	require.True(t, ok)
	assert.Equal(t, "4.125%", out.InterestRate)

	partial := full
	partial.TermType = nil
	assert.False(t, partial.Complete())
	unchanged, ok := partial.ApplyTo(in)
	assert.False(t, ok)
	assert.Equal(t, in, unchanged)
}

func TestSchedule_Helpers(t *testing.T) {
	var empty Schedule
	_, ok := empty.Last()
	assert.False(t, ok)
	assert.True(t, empty.TotalInterest().IsZero())
	assert.True(t, empty.TotalPaid().IsZero())
	assert.False(t, empty.PaidOffEarly(10))

	s := Schedule{
		{PaymentNumber: 1, StartingBalance: decimal.NewFromInt(150), PrincipalPortion: decimal.NewFromInt(90), InterestPortion: decimal.NewFromInt(10),
			CumulativePrincipal: decimal.NewFromInt(90), CumulativeInterest: decimal.NewFromInt(10)},
		{PaymentNumber: 2, StartingBalance: decimal.NewFromInt(60), PrincipalPortion: decimal.NewFromInt(95), InterestPortion: decimal.NewFromInt(5),
			CumulativePrincipal: decimal.NewFromInt(185), CumulativeInterest: decimal.NewFromInt(15)},
	}
	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, 2, last.PaymentNumber)
	assert.Equal(t, "-35", last.EndingBalance().String())
	assert.Equal(t, "15", s.TotalInterest().String())
	assert.Equal(t, "200", s.TotalPaid().String())
	assert.True(t, s.PaidOffEarly(3))
	assert.False(t, s.PaidOffEarly(2))
}

func TestScenarioComparison_LowestTotalInterest(t *testing.T) {
	_, ok := ScenarioComparison{}.LowestTotalInterest()
	assert.False(t, ok)

	sc := ScenarioComparison{Results: []AmortizationResult{
		{Input: LoanInput{Name: "a"}, Summary: ScheduleSummary{TotalInterest: decimal.NewFromInt(300)}},
		{Input: LoanInput{Name: "b"}, Summary: ScheduleSummary{TotalInterest: decimal.NewFromInt(200)}},
		{Input: LoanInput{Name: "c"}, Summary: ScheduleSummary{TotalInterest: decimal.NewFromInt(200)}},
	}}
	best, ok := sc.LowestTotalInterest()
	require.True(t, ok)
	assert.Equal(t, "b", best.Input.Name)
}

func TestConfiguration_AllLoans(t *testing.T) {
	c := Configuration{Loan: LoanInput{Name: "main"}, Scenarios: []LoanInput{{Name: "alt"}}}
	loans := c.AllLoans()
	require.Len(t, loans, 2)
	assert.Equal(t, "main", loans[0].Name)
	assert.Equal(t, "alt", loans[1].Name)
}
