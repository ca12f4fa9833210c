package interfaces

import "market-watch/src/models"

// -----------------------------------------------------------------------------
// INewsSource is the contract for market news providers.
// -----------------------------------------------------------------------------

type INewsSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// Available reports whether the provider can currently serve news.
	Available() bool

	// -----------------------------------------------------------------------------

	// MarketNews returns news for the given market, filtered to the tracked
	// symbols where possible.
	MarketNews(countryCode string, symbols []string) ([]models.MNewsItem, error)
}
