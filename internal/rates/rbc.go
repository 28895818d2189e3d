package rates

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	rbcRatePattern = regexp.MustCompile(`(\d{1,2}\.\d{1,3})%`)
	// first one or two digit number before the term type, so "10 Year Closed" is 10
	rbcTermPattern = regexp.MustCompile(`(\d{1,2})\D*?(Closed|Open)`)
)

// ParseRBCRates reads the RBC mortgage rate page.
//
// Rates live under #special-rates. Each h4 heading names an amortization band
// and is followed by two striped tables (fixed then variable); the
// button.collapse-toggle above each table says which. A row is a rate when its
// first cell mentions a year term and its second cell holds a percentage.
func ParseRBCRates(r io.Reader) ([]domain.RateRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RBC rate page: %w", err)
	}

	special := doc.Find("#special-rates").First()
	if special.Length() == 0 {
		return nil, fmt.Errorf("RBC rate page has no #special-rates section")
	}

	var headers []string
	special.ChildrenFiltered("h4").Each(func(_ int, h *goquery.Selection) {
		headers = append(headers, cleanText(h.Text()))
	})
	var toggles []string
	special.Find("button.collapse-toggle").Each(func(_ int, b *goquery.Selection) {
		toggles = append(toggles, cleanText(b.Text()))
	})

	var records []domain.RateRecord
	special.Find("table.table-striped").Each(func(i int, table *goquery.Selection) {
		amortYears := 25
		if h := headerFor(headers, i); strings.Contains(strings.ToLower(h), "greater than 25") {
			amortYears = 30
		}

		rateType := "Unknown"
		if i < len(toggles) {
			switch lower := strings.ToLower(toggles[i]); {
			case strings.Contains(lower, "fixed"):
				rateType = "Fixed"
			case strings.Contains(lower, "variable"):
				rateType = "Variable"
			}
		}

		table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
			cells := tr.Find("td")
			if cells.Length() < 2 {
				return
			}
			term := cleanText(cells.Eq(0).Text())
			rate := cleanText(cells.Eq(1).Text())
			if !strings.Contains(strings.ToLower(term), "year") || !strings.Contains(rate, "%") {
				return
			}

			// "Prime - 0.50% (5.95%)" quotes the effective rate last
			rm := rbcRatePattern.FindAllStringSubmatch(rate, -1)
			if rm == nil {
				return
			}
			ratePercent, err := decimal.NewFromString(rm[len(rm)-1][1])
			if err != nil {
				return
			}

			tm := rbcTermPattern.FindStringSubmatch(term)
			if tm == nil {
				return
			}
			termYears, err := strconv.Atoi(tm[1])
			if err != nil {
				return
			}

			records = append(records, domain.NewRateRecord("RBC", ratePercent, rateType, termYears, tm[2], amortYears))
		})
	})

	return records, nil
}

// headerFor maps table i to its amortization heading; tables come in pairs
func headerFor(headers []string, i int) string {
	if len(headers) == 0 {
		return ""
	}
	idx := i / 2
	if idx >= len(headers) {
		idx = len(headers) - 1
	}
	return headers[idx]
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
