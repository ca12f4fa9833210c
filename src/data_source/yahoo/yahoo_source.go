package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"market-watch/src/interfaces"
	"market-watch/src/logger"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------

const chartBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// QuoteSource fetches quotes from the Yahoo Finance chart endpoint. No API key
// is required, so the source is always available.
type QuoteSource struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger
}

// -----------------------------------------------------------------------------

func NewQuoteSource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *QuoteSource {
	return &QuoteSource{
		Config:  cfg,
		Network: netMgr,
		Logger:  logger.NewLogger(cfg.LogLevel, "YahooQuoteSource"),
	}
}

// -----------------------------------------------------------------------------

func (s *QuoteSource) Name() string {
	return "yahoo"
}

// -----------------------------------------------------------------------------

func (s *QuoteSource) Available() bool {
	return true
}

// -----------------------------------------------------------------------------

// FetchQuotes fetches all symbols concurrently, bounded by the configured
// request concurrency. Per-symbol failures land in the result map; the call
// itself only fails when the context is cancelled.
func (s *QuoteSource) FetchQuotes(ctx context.Context, symbols []string) (map[string]models.MQuoteResult, error) {
	results := make(map[string]models.MQuoteResult, len(symbols))
	if len(symbols) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, s.Config.Network.ConcurrentRequests)

	for _, symbol := range symbols {
		wg.Add(1)
		go func(sym string) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				mu.Lock()
				results[sym] = models.MQuoteResult{Err: ctx.Err()}
				mu.Unlock()
				return
			}
			defer func() { <-sem }()

			// Small delay to avoid tripping rate limits
			time.Sleep(10 * time.Millisecond)

			snapshot, err := s.fetchSymbolQuote(sym)
			mu.Lock()
			if err != nil {
				results[sym] = models.MQuoteResult{Err: err}
			} else {
				results[sym] = models.MQuoteResult{Snapshot: snapshot}
			}
			mu.Unlock()
		}(symbol)
	}
	wg.Wait()

	ok := 0
	for _, r := range results {
		if r.Err == nil {
			ok++
		}
	}
	s.Logger.Info("Yahoo: fetched %d/%d symbols successfully", ok, len(symbols))

	if err := ctx.Err(); err != nil {
		return results, err
	}
	return results, nil
}

// -----------------------------------------------------------------------------

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency            string  `json:"currency"`
				Symbol              string  `json:"symbol"`
				ExchangeName        string  `json:"exchangeName"`
				RegularMarketTime   int64   `json:"regularMarketTime"`
				RegularMarketPrice  float64 `json:"regularMarketPrice"`
				RegularMarketVolume int64   `json:"regularMarketVolume"`
				ChartPreviousClose  float64 `json:"chartPreviousClose"`
				PreviousClose       float64 `json:"previousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// -----------------------------------------------------------------------------

// fetchSymbolQuote pulls the daily chart meta for one symbol and derives the
// change figures from the previous close.
func (s *QuoteSource) fetchSymbolQuote(symbol string) (models.MStockSnapshot, error) {
	params := map[string]string{
		"interval":       "1d",
		"range":          "1d",
		"includePrePost": "false",
	}

	body, err := s.Network.Get(fmt.Sprintf("%s/%s", chartBaseURL, symbol), params)
	if err != nil {
		return models.MStockSnapshot{}, fmt.Errorf("network error for %s: %w", symbol, err)
	}

	return ParseChartQuote(symbol, body)
}

// -----------------------------------------------------------------------------

// ParseChartQuote converts a chart endpoint response into a snapshot.
func ParseChartQuote(symbol string, data []byte) (models.MStockSnapshot, error) {
	var resp chartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.MStockSnapshot{}, fmt.Errorf("json unmarshal failed: %w", err)
	}

	if resp.Chart.Error != nil {
		return models.MStockSnapshot{}, fmt.Errorf("yahoo api error: %s - %s",
			resp.Chart.Error.Code, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return models.MStockSnapshot{}, fmt.Errorf("no result in response for %s", symbol)
	}

	meta := resp.Chart.Result[0].Meta
	price := meta.RegularMarketPrice
	if price <= 0 {
		return models.MStockSnapshot{}, fmt.Errorf("no market price for %s", symbol)
	}

	prevClose := meta.ChartPreviousClose
	if meta.PreviousClose > 0 {
		prevClose = meta.PreviousClose
	}

	change := 0.0
	changePct := 0.0
	if prevClose > 0 {
		change = price - prevClose
		changePct = change / prevClose * 100
	}

	asOf := time.Now().UTC()
	if meta.RegularMarketTime > 0 {
		asOf = time.Unix(meta.RegularMarketTime, 0).UTC()
	}

	return models.MStockSnapshot{
		Symbol:        symbol,
		Price:         price,
		Change:        change,
		ChangePercent: changePct,
		Volume:        meta.RegularMarketVolume,
		AsOf:          asOf,
		Note:          "Real-time data from Yahoo Finance",
	}, nil
}
