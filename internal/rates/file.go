package rates

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// FileSource parses a saved copy of a lender's rate listing
type FileSource struct {
	Lender string
	Path   string
}

// ParserFor returns the listing parser for a lender name
func ParserFor(lender string) (Parser, bool) {
	switch normalizeLender(lender) {
	case "BMO":
		return ParseBMORates, true
	case "RBC":
		return ParseRBCRates, true
	}
	return nil, false
}

func normalizeLender(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func (s *FileSource) Name() string { return normalizeLender(s.Lender) }

func (s *FileSource) Fetch(ctx context.Context) ([]domain.RateRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parse, ok := ParserFor(s.Lender)
	if !ok {
		return nil, fmt.Errorf("no parser for lender %q", s.Lender)
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", s.Path, err)
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	return records, nil
}
