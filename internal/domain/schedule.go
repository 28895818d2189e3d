package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentAmount is the fixed amount paid every period, rounded to cents
type PaymentAmount = decimal.Decimal

// ScheduleRow is one payment period. StartingBalance is the balance before the payment is applied.
type ScheduleRow struct {
	PaymentNumber       int             `json:"payment_number"`
	PaymentDate         *time.Time      `json:"payment_date,omitempty"`
	StartingBalance     decimal.Decimal `json:"starting_balance"`
	PaymentAmount       decimal.Decimal `json:"payment_amount"`
	PrincipalPortion    decimal.Decimal `json:"principal_paid"`
	InterestPortion     decimal.Decimal `json:"interest_paid"`
	CumulativePrincipal decimal.Decimal `json:"total_principal_paid"`
	CumulativeInterest  decimal.Decimal `json:"total_interest_paid"`
}

// EndingBalance returns the balance once this row's principal is applied
func (r ScheduleRow) EndingBalance() decimal.Decimal {
	return r.StartingBalance.Sub(r.PrincipalPortion)
}

// Schedule is the full, ordered amortization table
type Schedule []ScheduleRow

// Last returns the final row, or false for an empty schedule
func (s Schedule) Last() (ScheduleRow, bool) {
	if len(s) == 0 {
		return ScheduleRow{}, false
	}
	return s[len(s)-1], true
}

// TotalInterest is the cumulative interest at the final row
func (s Schedule) TotalInterest() decimal.Decimal {
	last, ok := s.Last()
	if !ok {
		return decimal.Zero
	}
	return last.CumulativeInterest
}

// TotalPaid sums every payment made
func (s Schedule) TotalPaid() decimal.Decimal {
	last, ok := s.Last()
	if !ok {
		return decimal.Zero
	}
	return last.CumulativePrincipal.Add(last.CumulativeInterest)
}

// PaidOffEarly reports whether the schedule stopped before scheduledPeriods
func (s Schedule) PaidOffEarly(scheduledPeriods int) bool {
	return len(s) > 0 && len(s) < scheduledPeriods
}

// ScheduleSummary aggregates a schedule for reporting
type ScheduleSummary struct {
	ScheduledPayments int             `json:"scheduled_payments"`
	PaymentsMade      int             `json:"payments_made"`
	PaidOffEarly      bool            `json:"paid_off_early"`
	TotalPaid         decimal.Decimal `json:"total_paid"`
	TotalInterest     decimal.Decimal `json:"total_interest"`
	FinalBalance      decimal.Decimal `json:"final_balance"`
	PayoffDate        *time.Time      `json:"payoff_date,omitempty"`

	// Set for accelerated frequencies: the same loan on the standard frequency
	StandardPayment       *decimal.Decimal `json:"standard_payment,omitempty"`
	StandardTotalInterest *decimal.Decimal `json:"standard_total_interest,omitempty"`
	InterestSaved         *decimal.Decimal `json:"interest_saved,omitempty"`
}

// AmortizationResult is everything produced by one recalculation
type AmortizationResult struct {
	Input      LoanInput        `json:"input"`
	Parameters LoanParameters   `json:"parameters"`
	Frequency  PaymentFrequency `json:"frequency"`
	Term       Term             `json:"term"`
	Payment    PaymentAmount    `json:"payment"`
	Schedule   Schedule         `json:"schedule"`
	Summary    ScheduleSummary  `json:"summary"`
}

// ScenarioComparison holds results for several loan inputs computed side by side
type ScenarioComparison struct {
	Results []AmortizationResult `json:"results"`
}

// LowestTotalInterest returns the result paying the least interest overall
func (sc ScenarioComparison) LowestTotalInterest() (AmortizationResult, bool) {
	if len(sc.Results) == 0 {
		return AmortizationResult{}, false
	}
	best := sc.Results[0]
	for _, r := range sc.Results[1:] {
		if r.Summary.TotalInterest.LessThan(best.Summary.TotalInterest) {
			best = r
		}
	}
	return best, true
}
