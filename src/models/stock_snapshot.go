package models

import "time"

// MStockSnapshot is one point-in-time quote for a stock. Snapshots are created
// fresh on every refresh cycle by a quote source and are read-only downstream.
type MStockSnapshot struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"change_percent"` // percent units: +2.0 means +2%
	Volume        int64     `json:"volume"`
	AsOf          time.Time `json:"as_of"`
	Note          string    `json:"note,omitempty"` // company blurb or source note
}

// -----------------------------------------------------------------------------

// MQuoteResult carries a per-symbol fetch outcome so a batch fetch can fail
// partially without failing the whole call.
type MQuoteResult struct {
	Snapshot MStockSnapshot
	Err      error
}
