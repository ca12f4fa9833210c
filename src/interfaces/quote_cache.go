package interfaces

import "market-watch/src/models"

// -----------------------------------------------------------------------------
// IQuoteCache defines the contract for the TTL quote cache that shields quote
// sources from rate limits. Caching lives entirely in the fetch layer; the
// provider core never caches.
// -----------------------------------------------------------------------------

type IQuoteCache interface {

	// Initialize sets up the backing store (schema, tables).
	Initialize() error

	// -----------------------------------------------------------------------------

	// GetQuote returns the cached snapshot for a symbol. With allowStale=false
	// only entries within their TTL are returned; with allowStale=true an
	// expired entry is acceptable (used as a rate-limit fallback).
	GetQuote(symbol string, allowStale bool) (models.MStockSnapshot, bool, error)

	// -----------------------------------------------------------------------------

	// PutQuote stores a snapshot with the configured TTL.
	PutQuote(snapshot models.MStockSnapshot) error

	// -----------------------------------------------------------------------------

	// CleanupExpired removes entries stale beyond the retention window.
	// Recently expired entries are kept so they can serve as rate-limit
	// fallbacks.
	CleanupExpired() error

	// -----------------------------------------------------------------------------

	// Close the backing store
	Close() error
}
