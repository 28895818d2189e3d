package rates

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"

	"github.com/rpgo/mortgage-calculator/internal/domain"
	"go.uber.org/zap"
)

// Harvester fetches every source once and keeps the merged result
type Harvester struct {
	sources []Source
	logger  *zap.Logger

	mu      sync.Mutex
	fetched bool
	rates   []domain.RateRecord
}

// NewHarvester creates a harvester over sources. A nil logger disables logging.
func NewHarvester(logger *zap.Logger, sources ...Source) *Harvester {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Harvester{sources: sources, logger: logger}
}

// Harvest fetches all sources concurrently and returns their rates sorted
// lowest rate first. A failing source is logged and skipped; ErrNoRates is
// returned when nothing was found. The first successful harvest is cached and
// returned by later calls without fetching again. Callers get their own copy.
func (h *Harvester) Harvest(ctx context.Context) ([]domain.RateRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.fetched {
		h.logger.Debug("using cached bank rates", zap.String("op", "Harvest"), zap.Int("count", len(h.rates)))
		return slices.Clone(h.rates), nil
	}

	type outcome struct {
		source  string
		records []domain.RateRecord
		err     error
	}
	results := make([]outcome, len(h.sources))

	var wg sync.WaitGroup
	for i, src := range h.sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			records, err := src.Fetch(ctx)
			results[i] = outcome{source: src.Name(), records: records, err: err}
		}(i, src)
	}
	wg.Wait()

	var merged []domain.RateRecord
	var errs []error
	for _, res := range results {
		if res.err != nil {
			h.logger.Warn("failed to fetch bank rates",
				zap.String("op", "Harvest"),
				zap.String("source", res.source),
				zap.Error(res.err),
			)
			errs = append(errs, res.err)
			continue
		}
		h.logger.Info("fetched bank rates",
			zap.String("op", "Harvest"),
			zap.String("source", res.source),
			zap.Int("count", len(res.records)),
		)
		merged = append(merged, res.records...)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(merged) == 0 {
		return nil, errors.Join(append([]error{ErrNoRates}, errs...)...)
	}

	SortByRate(merged)
	h.rates = merged
	h.fetched = true
	return slices.Clone(merged), nil
}

// SortByRate orders records lowest rate first; records without a rate go last
func SortByRate(records []domain.RateRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].RatePercent, records[j].RatePercent
		if a == nil || b == nil {
			return a != nil && b == nil
		}
		return a.LessThan(*b)
	})
}
