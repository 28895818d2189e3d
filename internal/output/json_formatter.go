package output

import (
	"encoding/json"

	"github.com/rpgo/mortgage-calculator/internal/domain"
)

// JSONFormatter serializes the full result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(result *domain.AmortizationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
