package datasource

import (
	"context"
	"fmt"

	"market-watch/src/interfaces"
	"market-watch/src/logger"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// SourceChain
// -----------------------------------------------------------------------------

// SourceChain tries quote sources in priority order. Symbols a source cannot
// deliver are retried against the next source, so one flaky upstream degrades
// the result instead of emptying it.
type SourceChain struct {
	Sources []interfaces.IQuoteSource
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewSourceChain(log *logger.Logger, sources ...interfaces.IQuoteSource) *SourceChain {
	return &SourceChain{Sources: sources, Logger: log}
}

// -----------------------------------------------------------------------------

func (c *SourceChain) Name() string {
	return "chain"
}

// -----------------------------------------------------------------------------

func (c *SourceChain) Available() bool {
	for _, src := range c.Sources {
		if src.Available() {
			return true
		}
	}
	return false
}

// -----------------------------------------------------------------------------

// FetchQuotes walks the chain, keeping the first successful result per symbol.
func (c *SourceChain) FetchQuotes(ctx context.Context, symbols []string) (map[string]models.MQuoteResult, error) {
	results := make(map[string]models.MQuoteResult, len(symbols))
	remaining := symbols

	for _, src := range c.Sources {
		if len(remaining) == 0 {
			break
		}
		if !src.Available() {
			c.Logger.Debug("Source %s unavailable, skipping", src.Name())
			continue
		}

		fetched, err := src.FetchQuotes(ctx, remaining)
		if err != nil {
			c.Logger.Warning("Source %s failed for %d symbols: %v", src.Name(), len(remaining), err)
			if ctx.Err() != nil {
				return results, ctx.Err()
			}
			continue
		}

		var next []string
		for _, sym := range remaining {
			if r, ok := fetched[sym]; ok && r.Err == nil {
				results[sym] = r
			} else {
				if ok && r.Err != nil {
					c.Logger.Debug("Source %s: %s failed: %v", src.Name(), sym, r.Err)
				}
				next = append(next, sym)
			}
		}
		remaining = next
	}

	for _, sym := range remaining {
		results[sym] = models.MQuoteResult{Err: fmt.Errorf("no source returned data for %s", sym)}
	}
	return results, nil
}
