package provider

import (
	"context"
	"errors"
	"testing"

	"market-watch/src/advisor"
	"market-watch/src/helpers"
	"market-watch/src/logger"
	"market-watch/src/market"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------

// fakeQuoteSource returns canned results and records the symbols it was asked
// for. Symbols listed in failing come back with a per-symbol error.
type fakeQuoteSource struct {
	failing   map[string]bool
	failAll   error
	requested []string
}

func (f *fakeQuoteSource) Name() string    { return "fake" }
func (f *fakeQuoteSource) Available() bool { return true }

func (f *fakeQuoteSource) FetchQuotes(ctx context.Context, symbols []string) (map[string]models.MQuoteResult, error) {
	f.requested = symbols
	if f.failAll != nil {
		return nil, f.failAll
	}

	results := make(map[string]models.MQuoteResult, len(symbols))
	for _, sym := range symbols {
		if f.failing[sym] {
			results[sym] = models.MQuoteResult{Err: errors.New("fetch failed")}
			continue
		}
		results[sym] = models.MQuoteResult{Snapshot: models.MStockSnapshot{
			Symbol: sym, Price: 100, ChangePercent: 2.5,
		}}
	}
	return results, nil
}

// -----------------------------------------------------------------------------

type fakeNewsSource struct {
	items []models.MNewsItem
	err   error
}

func (f *fakeNewsSource) Name() string    { return "fake-news" }
func (f *fakeNewsSource) Available() bool { return true }
func (f *fakeNewsSource) MarketNews(countryCode string, symbols []string) ([]models.MNewsItem, error) {
	return f.items, f.err
}

// -----------------------------------------------------------------------------

func newTestProvider(quotes *fakeQuoteSource, newsSource *fakeNewsSource, extra []string) *MarketDataProvider {
	log := logger.NewLogger("ERROR", "test")
	detector := market.NewCountryDetector(market.NewMarketCatalog(), nil, "US", log)
	return NewMarketDataProvider(detector, quotes, newsSource, advisor.NewEngine(models.MAdvisorConfig{}), log, extra)
}

// -----------------------------------------------------------------------------

func TestSummaryPreservesProfileOrder(t *testing.T) {
	quotes := &fakeQuoteSource{}
	p := newTestProvider(quotes, &fakeNewsSource{}, nil)

	summary, err := p.GetMarketSummary(context.Background(), "US")
	if err != nil {
		t.Fatal(err)
	}

	us, _ := market.NewMarketCatalog().Lookup("US")
	if len(summary.Stocks) != len(us.TopSymbols) {
		t.Fatalf("got %d stocks, want %d", len(summary.Stocks), len(us.TopSymbols))
	}
	for i, stock := range summary.Stocks {
		if stock.Snapshot.Symbol != us.TopSymbols[i] {
			t.Errorf("stock[%d] = %s, want %s", i, stock.Snapshot.Symbol, us.TopSymbols[i])
		}
	}
	if summary.CountryCode != "US" || summary.Currency != "USD" {
		t.Errorf("market metadata wrong: %s/%s", summary.CountryCode, summary.Currency)
	}
}

// -----------------------------------------------------------------------------

func TestSummaryDropsFailedSymbols(t *testing.T) {
	quotes := &fakeQuoteSource{failing: map[string]bool{"MSFT": true, "TSLA": true}}
	p := newTestProvider(quotes, &fakeNewsSource{}, nil)

	summary, err := p.GetMarketSummary(context.Background(), "US")
	if err != nil {
		t.Fatal(err)
	}

	us, _ := market.NewMarketCatalog().Lookup("US")
	if len(summary.Stocks) != len(us.TopSymbols)-2 {
		t.Fatalf("got %d stocks, want %d", len(summary.Stocks), len(us.TopSymbols)-2)
	}
	for _, stock := range summary.Stocks {
		if stock.Snapshot.Symbol == "MSFT" || stock.Snapshot.Symbol == "TSLA" {
			t.Errorf("failed symbol %s present in summary", stock.Snapshot.Symbol)
		}
	}
}

// -----------------------------------------------------------------------------

func TestSummaryAllSymbolsFailing(t *testing.T) {
	failing := make(map[string]bool)
	us, _ := market.NewMarketCatalog().Lookup("US")
	for _, sym := range us.TopSymbols {
		failing[sym] = true
	}
	p := newTestProvider(&fakeQuoteSource{failing: failing}, &fakeNewsSource{}, nil)

	_, err := p.GetMarketSummary(context.Background(), "US")
	var unavailable *helpers.DataUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want DataUnavailableError", err)
	}
	if unavailable.Market != "US" {
		t.Errorf("Market = %q", unavailable.Market)
	}
}

// -----------------------------------------------------------------------------

func TestSummarySourceErrorWrapped(t *testing.T) {
	p := newTestProvider(&fakeQuoteSource{failAll: errors.New("network down")}, &fakeNewsSource{}, nil)

	_, err := p.GetMarketSummary(context.Background(), "US")
	var unavailable *helpers.DataUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("got %v, want DataUnavailableError", err)
	}
}

// -----------------------------------------------------------------------------

func TestSummaryNewsFailureIsNonFatal(t *testing.T) {
	p := newTestProvider(&fakeQuoteSource{}, &fakeNewsSource{err: errors.New("feed down")}, nil)

	summary, err := p.GetMarketSummary(context.Background(), "US")
	if err != nil {
		t.Fatalf("news failure must not fail the summary: %v", err)
	}
	if len(summary.News) != 0 {
		t.Errorf("News = %v, want empty", summary.News)
	}
	if len(summary.Stocks) == 0 {
		t.Error("stocks missing")
	}
}

// -----------------------------------------------------------------------------

func TestExtraSymbolsAppendedAndDeduplicated(t *testing.T) {
	quotes := &fakeQuoteSource{}
	p := newTestProvider(quotes, &fakeNewsSource{}, []string{"IBM", "AAPL", "IBM", ""})

	_, err := p.GetMarketSummary(context.Background(), "US")
	if err != nil {
		t.Fatal(err)
	}

	us, _ := market.NewMarketCatalog().Lookup("US")
	want := len(us.TopSymbols) + 1 // IBM once, AAPL already tracked
	if len(quotes.requested) != want {
		t.Fatalf("requested %d symbols, want %d: %v", len(quotes.requested), want, quotes.requested)
	}
	if quotes.requested[len(quotes.requested)-1] != "IBM" {
		t.Errorf("extras should come after profile symbols: %v", quotes.requested)
	}
}

// -----------------------------------------------------------------------------

func TestGetAllStocksUnsupportedOverride(t *testing.T) {
	p := newTestProvider(&fakeQuoteSource{}, &fakeNewsSource{}, nil)

	_, err := p.GetAllStocks(context.Background(), "ZZ")
	var unsupported *helpers.UnsupportedMarketError
	if !errors.As(err, &unsupported) {
		t.Fatalf("got %v, want UnsupportedMarketError", err)
	}
}
