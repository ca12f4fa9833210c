package models

// MMarketProfile describes one supported market. Profiles are built once at
// startup by the catalog and never mutated afterwards.
type MMarketProfile struct {
	CountryCode  string   `json:"country_code"` // ISO-2, unique key
	CountryName  string   `json:"country_name"`
	CurrencyCode string   `json:"currency_code"`
	ExchangeName string   `json:"exchange_name"`
	ExchangeMIC  string   `json:"exchange_mic"` // ISO 10383, drives the trading calendar
	Indexes      []string `json:"indexes"`
	TopSymbols   []string `json:"top_symbols"`

	// Fallback marks a profile synthesized for a detected country that has no
	// catalog entry: the default market's symbols under the original code.
	Fallback bool `json:"fallback"`
}
