package sim

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"market-watch/src/logger"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------

// QuoteSource generates plausible quotes without any network access: a bounded
// random walk around per-market base prices. It anchors the fallback chain so
// the dashboard always has something to show.
type QuoteSource struct {
	Logger *logger.Logger
	rng    *rand.Rand
	mu     sync.Mutex
}

// -----------------------------------------------------------------------------

func NewQuoteSource(logLevel string) *QuoteSource {
	return &QuoteSource{
		Logger: logger.NewLogger(logLevel, "SimQuoteSource"),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// -----------------------------------------------------------------------------

func (s *QuoteSource) Name() string {
	return "simulated"
}

// -----------------------------------------------------------------------------

func (s *QuoteSource) Available() bool {
	return true
}

// -----------------------------------------------------------------------------

// FetchQuotes simulates a quote per symbol: change percent uniform in
// [-4%, +4%] applied to the symbol's base price.
func (s *QuoteSource) FetchQuotes(ctx context.Context, symbols []string) (map[string]models.MQuoteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make(map[string]models.MQuoteResult, len(symbols))
	now := time.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, symbol := range symbols {
		base, ok := basePrices[symbol]
		if !ok {
			base = 100.0
		}

		changePct := s.rng.Float64()*8.0 - 4.0
		change := base * changePct / 100

		note := companyBlurbs[symbol]
		if note == "" {
			note = symbol + " - Major company"
		}

		results[symbol] = models.MQuoteResult{Snapshot: models.MStockSnapshot{
			Symbol:        symbol,
			Price:         base + change,
			Change:        change,
			ChangePercent: changePct,
			Volume:        int64(s.rng.Intn(9_000_000) + 1_000_000),
			AsOf:          now,
			Note:          note,
		}}
	}

	return results, nil
}
