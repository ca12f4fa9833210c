package interfaces

import (
	"context"

	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// IQuoteSource is the contract for fetching stock quotes from an external
// source (API, scraper, simulation).
// -----------------------------------------------------------------------------

type IQuoteSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// Available reports whether the source can currently serve requests
	// (API key present, network reachable, etc.).
	Available() bool

	// -----------------------------------------------------------------------------

	// FetchQuotes retrieves snapshots for the given symbols. The returned map
	// carries a per-symbol result so callers can recover from partial failure;
	// a non-nil error means the source as a whole could not be used.
	FetchQuotes(ctx context.Context, symbols []string) (map[string]models.MQuoteResult, error)
}
