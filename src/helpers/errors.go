package helpers

import (
	"fmt"
	"strings"
	"time"
)

// -----------------------------------------------------------------------------
// Custom Error Types
// -----------------------------------------------------------------------------

// MarketWatchError is the base wrapped error for the application.
type MarketWatchError struct {
	Message string
	Cause   error
}

func (e *MarketWatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MarketWatchError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------

// UnsupportedMarketError is returned when an explicit country override has no
// catalog entry. It is user-facing and lists the supported codes.
type UnsupportedMarketError struct {
	Code      string
	Supported []string
}

func (e *UnsupportedMarketError) Error() string {
	return fmt.Sprintf("unsupported market %q (supported: %s)",
		e.Code, strings.Join(e.Supported, ", "))
}

// -----------------------------------------------------------------------------

// InvalidSnapshotError flags malformed quote data (NaN/Inf change percent).
// It should not occur with a well-formed quote source, so it is surfaced
// rather than silently dropped.
type InvalidSnapshotError struct {
	Symbol string
	Reason string
}

func (e *InvalidSnapshotError) Error() string {
	return fmt.Sprintf("invalid snapshot for %s: %s", e.Symbol, e.Reason)
}

// -----------------------------------------------------------------------------

// DataUnavailableError is returned when no symbol of a refresh cycle could be
// fetched from any source.
type DataUnavailableError struct {
	Market string
	Cause  error
}

func (e *DataUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("no market data available for %s: %v", e.Market, e.Cause)
	}
	return fmt.Sprintf("no market data available for %s", e.Market)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Cause
}

// -----------------------------------------------------------------------------

// RateLimitError marks an upstream 429/403 so cache layers can decide to serve
// stale entries instead of failing.
type RateLimitError struct {
	URL    string
	Status int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited (status %d) on %s", e.Status, e.URL)
}

// -----------------------------------------------------------------------------
// Retry Logic
// -----------------------------------------------------------------------------

// RetryWithBackoff attempts to execute the operation up to maxRetries times
// with exponential backoff.
func RetryWithBackoff(operation string, maxRetries int, baseDelay time.Duration, fn func() error) error {
	var lastErr error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if err := fn(); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if attempt == maxRetries-1 {
			break
		}
		time.Sleep(baseDelay * (1 << attempt))
	}

	return &MarketWatchError{Message: fmt.Sprintf("%s failed after %d attempts", operation, maxRetries), Cause: lastErr}
}
