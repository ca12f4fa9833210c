package dashboard

import (
	"strings"
	"testing"
	"time"

	"market-watch/src/models"
)

// -----------------------------------------------------------------------------

func sampleSummary() *models.MMarketSummary {
	return &models.MMarketSummary{
		Country:     "United States",
		CountryCode: "US",
		Currency:    "USD",
		Indexes:     []string{"S&P 500", "NASDAQ"},
		GeneratedAt: time.Now().UTC(),
		Stocks: []models.MAnnotatedStock{
			{
				Snapshot: models.MStockSnapshot{
					Symbol: "AAPL", Price: 204.0, Change: 4.0, ChangePercent: 2.0,
					Note: "Apple - iPhones, iPads, Mac computers",
				},
				Recommendation: models.MRecommendation{
					Verdict: models.VerdictBuy, Strength: 0.5, Reason: "strong positive momentum",
				},
			},
		},
		News: []models.MNewsItem{
			{
				Headline:    "Apple announces record iPhone sales",
				Explanation: "Strong consumer demand despite economic concerns",
				Impact:      map[string]models.Direction{"AAPL": models.ImpactUp},
			},
		},
	}
}

// -----------------------------------------------------------------------------

func TestRenderWithoutColorHasNoEscapes(t *testing.T) {
	renderer := NewRenderer(false, nil)
	out := renderer.Render(sampleSummary())

	// The clear-screen prefix is always present; the body must be plain text
	body := strings.TrimPrefix(out, ansiClearScreen)
	if strings.Contains(body, "\033[") {
		t.Error("color disabled but output contains ANSI escapes")
	}
}

// -----------------------------------------------------------------------------

func TestRenderContainsMarketAndStocks(t *testing.T) {
	renderer := NewRenderer(false, nil)
	out := renderer.Render(sampleSummary())

	for _, want := range []string{
		"UNITED STATES MARKET WATCH",
		"S&P 500, NASDAQ",
		"$AAPL",
		"204.00 USD",
		"BUY",
		"strong positive momentum",
		"Apple announces record iPhone sales",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

// -----------------------------------------------------------------------------

func TestRenderFallbackNotice(t *testing.T) {
	summary := sampleSummary()
	summary.Fallback = true

	out := NewRenderer(false, nil).Render(summary)
	if !strings.Contains(out, "global market data") {
		t.Error("fallback summary should carry a notice")
	}
}

// -----------------------------------------------------------------------------

func TestRenderStartupMentionsSimulation(t *testing.T) {
	renderer := NewRenderer(false, nil)

	out := renderer.RenderStartup(sampleSummary(), true)
	if !strings.Contains(out, "simulated market data") {
		t.Error("startup banner should mention simulation mode")
	}

	out = renderer.RenderStartup(sampleSummary(), false)
	if strings.Contains(out, "simulated market data") {
		t.Error("banner mentions simulation when live data is in use")
	}
}
