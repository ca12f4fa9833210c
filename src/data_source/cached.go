package datasource

import (
	"context"
	"errors"

	"market-watch/src/helpers"
	"market-watch/src/interfaces"
	"market-watch/src/logger"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// CachedSource
// -----------------------------------------------------------------------------

// CachedSource wraps a quote source with the TTL cache. Fresh cache entries
// short-circuit the upstream entirely; when the upstream is rate limited, a
// stale entry is better than nothing and is served instead of the error.
type CachedSource struct {
	Inner  interfaces.IQuoteSource
	Cache  interfaces.IQuoteCache
	Logger *logger.Logger
}

// -----------------------------------------------------------------------------

func NewCachedSource(inner interfaces.IQuoteSource, cache interfaces.IQuoteCache, log *logger.Logger) *CachedSource {
	return &CachedSource{Inner: inner, Cache: cache, Logger: log}
}

// -----------------------------------------------------------------------------

func (s *CachedSource) Name() string {
	return s.Inner.Name() + "-cached"
}

// -----------------------------------------------------------------------------

func (s *CachedSource) Available() bool {
	return s.Inner.Available()
}

// -----------------------------------------------------------------------------

func (s *CachedSource) FetchQuotes(ctx context.Context, symbols []string) (map[string]models.MQuoteResult, error) {
	results := make(map[string]models.MQuoteResult, len(symbols))

	// 1. Serve what the cache still considers fresh
	var misses []string
	for _, sym := range symbols {
		snapshot, hit, err := s.Cache.GetQuote(sym, false)
		if err != nil {
			s.Logger.Warning("Cache read failed for %s: %v", sym, err)
		}
		if hit {
			results[sym] = models.MQuoteResult{Snapshot: snapshot}
		} else {
			misses = append(misses, sym)
		}
	}

	if len(misses) == 0 {
		return results, nil
	}

	// 2. Fetch the misses upstream
	fetched, err := s.Inner.FetchQuotes(ctx, misses)
	if err != nil {
		return results, err
	}

	for _, sym := range misses {
		r, ok := fetched[sym]
		if !ok {
			results[sym] = models.MQuoteResult{Err: errors.New("symbol missing from source response")}
			continue
		}

		if r.Err == nil {
			if err := s.Cache.PutQuote(r.Snapshot); err != nil {
				s.Logger.Warning("Cache write failed for %s: %v", sym, err)
			}
			results[sym] = r
			continue
		}

		// 3. Rate limited: fall back to a stale entry when one exists
		var rateErr *helpers.RateLimitError
		if errors.As(r.Err, &rateErr) {
			if snapshot, hit, cacheErr := s.Cache.GetQuote(sym, true); cacheErr == nil && hit {
				s.Logger.Info("Serving stale cache for %s after rate limit", sym)
				results[sym] = models.MQuoteResult{Snapshot: snapshot}
				continue
			}
		}
		results[sym] = r
	}

	if err := s.Cache.CleanupExpired(); err != nil {
		s.Logger.Debug("Cache cleanup failed: %v", err)
	}
	return results, nil
}
