package output

import (
	"strconv"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/rpgo/mortgage-calculator/pkg/dateutil"
)

// ScheduleHeaders are the amortization table columns, in order
var ScheduleHeaders = []string{"Payment #", "Starting Balance", "Payment Amount", "Principal Paid", "Interest Paid", "Total Principal Paid", "Total Interest Paid"}

// BankRateHeaders are the bank rate table columns, in order
var BankRateHeaders = []string{"Lender", "Interest Rate", "Rate Type", "Term Length", "Term Type", "Amortization"}

// ScheduleTableRows renders each row as the seven display strings of ScheduleHeaders
func ScheduleTableRows(schedule domain.Schedule) [][]string {
	rows := make([][]string, 0, len(schedule))
	for _, row := range schedule {
		rows = append(rows, []string{
			intToString(row.PaymentNumber),
			FormatCurrency(row.StartingBalance),
			FormatCurrency(row.PaymentAmount),
			FormatCurrency(row.PrincipalPortion),
			FormatCurrency(row.InterestPortion),
			FormatCurrency(row.CumulativePrincipal),
			FormatCurrency(row.CumulativeInterest),
		})
	}
	return rows
}

// RateTableRows projects each complete rate record onto the BankRateHeaders
// columns. Records missing any field are skipped.
func RateTableRows(records []domain.RateRecord) [][]string {
	data := make([][]string, 0, len(records))
	for _, r := range records {
		if !r.Complete() {
			continue
		}
		data = append(data, []string{
			*r.Lender,
			r.RatePercent.String() + "%",
			*r.RateType,
			formatYears(*r.TermYears),
			*r.TermType,
			formatYears(*r.AmortizationYears),
		})
	}
	return data
}

func intToString(n int) string { return strconv.Itoa(n) }

func formatDate(row domain.ScheduleRow) string {
	if row.PaymentDate == nil {
		return ""
	}
	return row.PaymentDate.Format(dateutil.DateLayout)
}
