package models

import "time"

// MAnnotatedStock pairs a snapshot with its recommendation.
type MAnnotatedStock struct {
	Snapshot       MStockSnapshot  `json:"snapshot"`
	Recommendation MRecommendation `json:"recommendation"`
}

// -----------------------------------------------------------------------------

// MMarketSummary is the result of one refresh cycle: resolved market, annotated
// stocks in the profile's symbol order, and the news feed. It is owned solely
// by the caller that requested it.
type MMarketSummary struct {
	Country     string            `json:"country"`
	CountryCode string            `json:"country_code"`
	Currency    string            `json:"currency"`
	Indexes     []string          `json:"indexes"`
	Stocks      []MAnnotatedStock `json:"stocks"`
	News        []MNewsItem       `json:"news"`
	GeneratedAt time.Time         `json:"generated_at"`
	Fallback    bool              `json:"fallback"`
}
