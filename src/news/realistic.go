package news

import (
	"math/rand"
	"sync"

	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// RealisticNewsSource
// -----------------------------------------------------------------------------

// RealisticNewsSource generates believable market headlines without any
// external API. Each call samples a few items from the market's template pool,
// keeping only items that mention a tracked symbol (plus generic fillers).
type RealisticNewsSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// -----------------------------------------------------------------------------

func NewRealisticNewsSource(seed int64) *RealisticNewsSource {
	return &RealisticNewsSource{rng: rand.New(rand.NewSource(seed))}
}

// -----------------------------------------------------------------------------

func (s *RealisticNewsSource) Name() string {
	return "realistic"
}

// -----------------------------------------------------------------------------

func (s *RealisticNewsSource) Available() bool {
	return true
}

// -----------------------------------------------------------------------------

// MarketNews returns up to three items relevant to the tracked symbols.
func (s *RealisticNewsSource) MarketNews(countryCode string, symbols []string) ([]models.MNewsItem, error) {
	pool := s.relevantNews(countryCode, symbols)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	if len(pool) > 3 {
		pool = pool[:3]
	}
	return pool, nil
}

// -----------------------------------------------------------------------------

func (s *RealisticNewsSource) relevantNews(countryCode string, symbols []string) []models.MNewsItem {
	tracked := make(map[string]bool, len(symbols))
	for _, sym := range symbols {
		tracked[sym] = true
	}

	var relevant []models.MNewsItem
	for _, item := range marketTemplates(countryCode) {
		mentions := false
		for sym := range item.Impact {
			if tracked[sym] {
				mentions = true
				break
			}
		}
		if mentions || len(item.Impact) == 0 {
			relevant = append(relevant, item)
		}
	}

	// Pad with generic items so sparse markets still get a news panel.
	if len(relevant) < 3 {
		relevant = append(relevant, genericNews(symbols)...)
	}
	return relevant
}

// -----------------------------------------------------------------------------

func genericNews(symbols []string) []models.MNewsItem {
	items := []models.MNewsItem{
		{
			Headline:    "Global markets show positive momentum",
			Explanation: "International trade improving across regions",
		},
		{
			Headline:    "Technology sector leads market gains",
			Explanation: "Digital transformation driving growth",
		},
		{
			Headline:    "Central bank policy supports market stability",
			Explanation: "Monetary policy providing economic support",
		},
	}
	directions := []models.Direction{models.ImpactUp, models.ImpactUp, models.ImpactDown}
	for i := range items {
		if i < len(symbols) {
			items[i].Impact = map[string]models.Direction{symbols[i]: directions[i]}
		}
	}
	return items
}
