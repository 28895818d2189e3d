package domain

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// RateRecord is one harvested bank rate. Fields are pointers because external
// listings are heterogeneous; nil means the listing did not carry the field.
type RateRecord struct {
	Lender            *string          `yaml:"lender,omitempty" json:"lender,omitempty"`
	RatePercent       *decimal.Decimal `yaml:"rate_percent,omitempty" json:"rate_percent,omitempty"`
	RateType          *string          `yaml:"rate_type,omitempty" json:"rate_type,omitempty"`
	TermYears         *int             `yaml:"term_years,omitempty" json:"term_years,omitempty"`
	TermType          *string          `yaml:"term_type,omitempty" json:"term_type,omitempty"`
	AmortizationYears *int             `yaml:"amort_years,omitempty" json:"amort_years,omitempty"`
}

// NewRateRecord builds a fully populated record
func NewRateRecord(lender string, rate decimal.Decimal, rateType string, termYears int, termType string, amortYears int) RateRecord {
	return RateRecord{
		Lender:            &lender,
		RatePercent:       &rate,
		RateType:          &rateType,
		TermYears:         &termYears,
		TermType:          &termType,
		AmortizationYears: &amortYears,
	}
}

// Complete reports whether every field is present
func (r RateRecord) Complete() bool {
	return r.Lender != nil && r.RatePercent != nil && r.RateType != nil &&
		r.TermYears != nil && r.TermType != nil && r.AmortizationYears != nil
}

// ApplyTo returns input with the interest rate, term and amortization taken
// from the record, the way selecting a bank rate updates the calculator.
// Incomplete records leave input unchanged and report false.
func (r RateRecord) ApplyTo(input LoanInput) (LoanInput, bool) {
	if !r.Complete() {
		return input, false
	}
	input.InterestRate = r.RatePercent.String() + "%"
	input.Amortization = strconv.Itoa(*r.AmortizationYears)
	input.TermYears = *r.TermYears
	input.TermType = *r.TermType
	return input, true
}
