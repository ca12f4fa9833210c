package news

import "testing"

// -----------------------------------------------------------------------------

func TestMarketNewsReturnsAtMostThree(t *testing.T) {
	source := NewRealisticNewsSource(1)

	items, err := source.MarketNews("US", []string{"AAPL", "NVDA", "TSLA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 || len(items) > 3 {
		t.Errorf("got %d items, want 1..3", len(items))
	}
	for _, item := range items {
		if item.Headline == "" || item.Explanation == "" {
			t.Errorf("incomplete item: %+v", item)
		}
	}
}

// -----------------------------------------------------------------------------

func TestMarketNewsFiltersByTrackedSymbols(t *testing.T) {
	source := NewRealisticNewsSource(1)

	// NVDA only: items naming other symbols exclusively should be filtered out
	for i := 0; i < 20; i++ {
		items, err := source.MarketNews("US", []string{"NVDA"})
		if err != nil {
			t.Fatal(err)
		}
		for _, item := range items {
			if len(item.Impact) == 0 {
				continue // general news is allowed through
			}
			if _, ok := item.Impact["NVDA"]; !ok {
				t.Fatalf("item %q names no tracked symbol: %v", item.Headline, item.Impact)
			}
		}
	}
}

// -----------------------------------------------------------------------------

func TestMarketNewsUnknownMarketGetsGenericPool(t *testing.T) {
	source := NewRealisticNewsSource(1)

	items, err := source.MarketNews("BR", []string{"PETR4.SA"})
	if err != nil {
		t.Fatal(err)
	}
	if len(items) == 0 {
		t.Error("unknown market should still get general news")
	}
}

// -----------------------------------------------------------------------------

func TestTemplatePoolsExist(t *testing.T) {
	for _, code := range []string{"US", "CA", "GB", "JP"} {
		if len(marketTemplates(code)) == 0 {
			t.Errorf("no templates for %s", code)
		}
	}
}
