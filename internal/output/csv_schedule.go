package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// CSVScheduleExporter writes the amortization table exactly as displayed:
// the seven column header followed by one line per payment.
type CSVScheduleExporter struct{}

func (c CSVScheduleExporter) Name() string      { return "csv" }
func (c CSVScheduleExporter) Extension() string { return "csv" }

func (c CSVScheduleExporter) Format(result *domain.AmortizationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write(ScheduleHeaders); err != nil {
		return nil, err
	}
	if err := w.WriteAll(ScheduleTableRows(result.Schedule)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CSVDetailedExporter writes plain numbers (no currency symbol) plus the
// payment date and ending balance, for spreadsheets.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string      { return "detailed-csv" }
func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(result *domain.AmortizationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"PaymentNumber", "PaymentDate", "StartingBalance", "PaymentAmount", "PrincipalPaid", "InterestPaid", "TotalPrincipalPaid", "TotalInterestPaid", "EndingBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range result.Schedule {
		record := []string{
			intToString(row.PaymentNumber),
			formatDate(row),
			row.StartingBalance.StringFixed(2),
			row.PaymentAmount.StringFixed(2),
			row.PrincipalPortion.StringFixed(2),
			row.InterestPortion.StringFixed(2),
			row.CumulativePrincipal.StringFixed(2),
			row.CumulativeInterest.StringFixed(2),
			row.EndingBalance().StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
