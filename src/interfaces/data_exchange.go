package interfaces

import "market-watch/src/models"

// -----------------------------------------------------------------------------
// IDataExchanger defines the interface for sharing summaries with external
// consumers (HTTP server / WebSocket push).
// -----------------------------------------------------------------------------

type IDataExchanger interface {

	// -----------------------------------------------------------------------------
	// Broadcast updates the served state and pushes the summary to listeners.
	Broadcast(summary *models.MMarketSummary)

	// -----------------------------------------------------------------------------
	// Start the server
	Start() error

	// -----------------------------------------------------------------------------
	// Stop the server gracefully
	Stop() error
}
