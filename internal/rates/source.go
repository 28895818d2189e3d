// Package rates harvests published mortgage rates from Canadian bank websites.
package rates

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

const (
	// UserAgent is sent with every rate request
	UserAgent = "mortgage-calculator/1.0 (rate lookup)"

	BMORatesURL = "https://www.bmo.com/public-data/api/v1.1/mortgages.json"
	RBCRatesURL = "https://www.rbcroyalbank.com/mortgages/mortgage-rates.html"

	defaultTimeout = 30 * time.Second
)

// ErrNoRates is returned when no source produced a single rate
var ErrNoRates = errors.New("no bank rates found")

// Source fetches one lender's rate listing
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]domain.RateRecord, error)
}

// Parser turns a downloaded listing into rate records
type Parser func(r io.Reader) ([]domain.RateRecord, error)

// HTTPSource downloads URL and hands the body to Parse
type HTTPSource struct {
	Lender string
	URL    string
	Accept string
	Parse  Parser
	Client *http.Client
}

// NewBMOSource returns the BMO JSON rate feed source
func NewBMOSource(client *http.Client) *HTTPSource {
	return &HTTPSource{Lender: "BMO", URL: BMORatesURL, Accept: "application/json", Parse: ParseBMORates, Client: client}
}

// NewRBCSource returns the RBC rate page source
func NewRBCSource(client *http.Client) *HTTPSource {
	return &HTTPSource{Lender: "RBC", URL: RBCRatesURL, Accept: "text/html", Parse: ParseRBCRates, Client: client}
}

func (s *HTTPSource) Name() string { return s.Lender }

func (s *HTTPSource) Fetch(ctx context.Context) ([]domain.RateRecord, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	if s.Accept != "" {
		req.Header.Set("Accept", s.Accept)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", s.Lender, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned status %d for %s", s.Lender, resp.StatusCode, s.URL)
	}

	records, err := s.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Lender, err)
	}
	return records, nil
}

// SourcesByName resolves lender names (case-insensitive) to live sources
func SourcesByName(names []string, client *http.Client) ([]Source, error) {
	sources := make([]Source, 0, len(names))
	for _, name := range names {
		switch normalizeLender(name) {
		case "BMO":
			sources = append(sources, NewBMOSource(client))
		case "RBC":
			sources = append(sources, NewRBCSource(client))
		default:
			return nil, fmt.Errorf("unknown rate source %q (known: BMO, RBC)", name)
		}
	}
	return sources, nil
}
