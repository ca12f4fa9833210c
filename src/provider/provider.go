package provider

import (
	"context"
	"time"

	"market-watch/src/advisor"
	"market-watch/src/helpers"
	"market-watch/src/interfaces"
	"market-watch/src/logger"
	"market-watch/src/market"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// MarketDataProvider
// -----------------------------------------------------------------------------

// MarketDataProvider is the orchestrator: it resolves the market, fetches
// quotes for the profile's symbols, runs the recommendation engine on each,
// and attaches the news feed. Each call builds a fresh summary; nothing is
// memoized here so callers control their own refresh cadence.
type MarketDataProvider struct {
	Detector     *market.CountryDetector
	Quotes       interfaces.IQuoteSource
	News         interfaces.INewsSource
	Engine       *advisor.Engine
	Logger       *logger.Logger
	ExtraSymbols []string
}

// -----------------------------------------------------------------------------

func NewMarketDataProvider(
	detector *market.CountryDetector,
	quotes interfaces.IQuoteSource,
	newsSource interfaces.INewsSource,
	engine *advisor.Engine,
	log *logger.Logger,
	extraSymbols []string,
) *MarketDataProvider {
	return &MarketDataProvider{
		Detector:     detector,
		Quotes:       quotes,
		News:         newsSource,
		Engine:       engine,
		Logger:       log,
		ExtraSymbols: extraSymbols,
	}
}

// -----------------------------------------------------------------------------

// GetMarketSummary produces one full dashboard refresh for the resolved
// market. Symbols that fail to fetch are dropped from the summary; only a
// total fetch failure is an error.
func (p *MarketDataProvider) GetMarketSummary(ctx context.Context, override string) (*models.MMarketSummary, error) {
	profile, err := p.Detector.Resolve(override)
	if err != nil {
		return nil, err
	}

	symbols := p.watchlist(profile)
	snapshots, err := p.fetchSnapshots(ctx, profile, symbols)
	if err != nil {
		return nil, err
	}

	// News failures degrade the dashboard, never break it.
	var items []models.MNewsItem
	if p.News != nil && p.News.Available() {
		items, err = p.News.MarketNews(profile.CountryCode, symbols)
		if err != nil {
			p.Logger.Warning("News feed unavailable: %v", err)
			items = nil
		}
	}

	stocks := make([]models.MAnnotatedStock, 0, len(snapshots))
	for _, snapshot := range snapshots {
		rec, err := p.Engine.EvaluateWithNews(snapshot, items)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, models.MAnnotatedStock{
			Snapshot:       snapshot,
			Recommendation: rec,
		})
	}

	return &models.MMarketSummary{
		Country:     profile.CountryName,
		CountryCode: profile.CountryCode,
		Currency:    profile.CurrencyCode,
		Indexes:     profile.Indexes,
		Stocks:      stocks,
		News:        items,
		GeneratedAt: time.Now().UTC(),
		Fallback:    profile.Fallback,
	}, nil
}

// -----------------------------------------------------------------------------

// GetAllStocks returns the raw snapshots for the resolved market, in the
// profile's symbol order, without recommendations or news.
func (p *MarketDataProvider) GetAllStocks(ctx context.Context, override string) ([]models.MStockSnapshot, error) {
	profile, err := p.Detector.Resolve(override)
	if err != nil {
		return nil, err
	}
	return p.fetchSnapshots(ctx, profile, p.watchlist(profile))
}

// -----------------------------------------------------------------------------

// watchlist is the profile's symbols plus the configured extras, deduplicated,
// profile order first.
func (p *MarketDataProvider) watchlist(profile models.MMarketProfile) []string {
	seen := make(map[string]bool, len(profile.TopSymbols)+len(p.ExtraSymbols))
	symbols := make([]string, 0, len(profile.TopSymbols)+len(p.ExtraSymbols))
	for _, sym := range profile.TopSymbols {
		if !seen[sym] {
			seen[sym] = true
			symbols = append(symbols, sym)
		}
	}
	for _, sym := range p.ExtraSymbols {
		if sym != "" && !seen[sym] {
			seen[sym] = true
			symbols = append(symbols, sym)
		}
	}
	return symbols
}

// -----------------------------------------------------------------------------

// fetchSnapshots fetches all symbols and keeps the successes in watchlist
// order. Every symbol failing means the market is dark right now, which the
// caller needs to hear about.
func (p *MarketDataProvider) fetchSnapshots(ctx context.Context, profile models.MMarketProfile, symbols []string) ([]models.MStockSnapshot, error) {
	results, err := p.Quotes.FetchQuotes(ctx, symbols)
	if err != nil {
		return nil, &helpers.DataUnavailableError{Market: profile.CountryCode, Cause: err}
	}

	var lastErr error
	snapshots := make([]models.MStockSnapshot, 0, len(symbols))
	for _, sym := range symbols {
		r, ok := results[sym]
		if !ok {
			continue
		}
		if r.Err != nil {
			p.Logger.Debug("Dropping %s: %v", sym, r.Err)
			lastErr = r.Err
			continue
		}
		snapshots = append(snapshots, r.Snapshot)
	}

	if len(snapshots) == 0 {
		return nil, &helpers.DataUnavailableError{Market: profile.CountryCode, Cause: lastErr}
	}
	return snapshots, nil
}
