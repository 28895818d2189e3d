package rates

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// bmoTermPattern pulls the term length out of names like "5-year-fixed-closed"
var bmoTermPattern = regexp.MustCompile(`^.*-(\d{1,2})-year`)

type bmoFeed struct {
	MortgageRates map[string]decimal.Decimal `json:"mortgage-rates"`
}

// ParseBMORates reads the BMO mortgage JSON feed, {"mortgage-rates": {"<name>": rate}}.
// Everything but the rate is encoded in the name:
//
//	"fixed"    Fixed, otherwise Variable
//	"over-25"  30 year amortization, otherwise 25
//	"-closed"  Closed, otherwise Open
//	"-N-year"  N year term; names without one are skipped
func ParseBMORates(r io.Reader) ([]domain.RateRecord, error) {
	var feed bmoFeed
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode BMO rates: %w", err)
	}

	names := make([]string, 0, len(feed.MortgageRates))
	for name := range feed.MortgageRates {
		names = append(names, name)
	}
	sort.Strings(names)

	records := make([]domain.RateRecord, 0, len(names))
	for _, name := range names {
		lower := strings.ToLower(name)

		m := bmoTermPattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		termYears, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}

		rateType := "Variable"
		if strings.Contains(lower, "fixed") {
			rateType = "Fixed"
		}
		amortYears := 25
		if strings.Contains(lower, "over-25") {
			amortYears = 30
		}
		termType := "Open"
		if strings.Contains(lower, "-closed") {
			termType = "Closed"
		}

		records = append(records, domain.NewRateRecord("BMO", feed.MortgageRates[name], rateType, termYears, termType, amortYears))
	}
	return records, nil
}
