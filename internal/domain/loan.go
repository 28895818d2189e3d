package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of decimal places kept for periodic rates and
// per-period interest while projecting a schedule.
const RatePrecision = 24

var hundred = decimal.NewFromInt(100)

// LoanInput holds the raw values as a user typed them, e.g. "$200,000" and "4.00%"
type LoanInput struct {
	Name             string `yaml:"name,omitempty" json:"name,omitempty"`
	Principal        string `yaml:"principal" json:"principal"`
	InterestRate     string `yaml:"interest_rate" json:"interest_rate"`
	Amortization     string `yaml:"amortization_years" json:"amortization_years"`
	Frequency        string `yaml:"payment_frequency" json:"payment_frequency"`
	TermYears        int    `yaml:"term_years,omitempty" json:"term_years,omitempty"`
	TermType         string `yaml:"term_type,omitempty" json:"term_type,omitempty"`
	FirstPaymentDate string `yaml:"first_payment_date,omitempty" json:"first_payment_date,omitempty"`
}

// LoanParameters is the numeric form of a loan, reconstructed on each recalculation
type LoanParameters struct {
	Principal         decimal.Decimal `json:"principal"`
	AmortizationYears int             `json:"amortization_years"`
	AnnualRatePercent decimal.Decimal `json:"annual_rate_percent"`
	PaymentsPerYear   int             `json:"payments_per_year"`
}

// PeriodicRate returns the annual rate as a fraction divided by the payments per year.
// Callers must ensure PaymentsPerYear is positive.
func (lp LoanParameters) PeriodicRate() decimal.Decimal {
	periods := hundred.Mul(decimal.NewFromInt(int64(lp.PaymentsPerYear)))
	return lp.AnnualRatePercent.DivRound(periods, RatePrecision)
}

// TotalPeriods returns the number of scheduled payments over the amortization period
func (lp LoanParameters) TotalPeriods() int {
	return lp.AmortizationYears * lp.PaymentsPerYear
}

// Term describes the renegotiation window within the amortization period. Metadata only.
type Term struct {
	Years   int        `json:"years,omitempty"`
	Type    string     `json:"type,omitempty"`
	EndDate *time.Time `json:"end_date,omitempty"`
}
