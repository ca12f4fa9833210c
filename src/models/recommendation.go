package models

import "fmt"

// Verdict is the closed set of trading recommendations. Keeping it an integer
// enum (rather than a free string) lets renderers switch exhaustively.
type Verdict int

const (
	VerdictHold Verdict = iota
	VerdictBuy
	VerdictSell
)

// -----------------------------------------------------------------------------

func (v Verdict) String() string {
	switch v {
	case VerdictBuy:
		return "BUY"
	case VerdictSell:
		return "SELL"
	case VerdictHold:
		return "HOLD"
	}
	return fmt.Sprintf("Verdict(%d)", int(v))
}

// MarshalJSON encodes the verdict as its display string.
func (v Verdict) MarshalJSON() ([]byte, error) {
	return []byte(`"` + v.String() + `"`), nil
}

// -----------------------------------------------------------------------------

// MRecommendation is the derived trading signal for one snapshot. It is
// stateless and recomputed every cycle; never cached across cycles.
type MRecommendation struct {
	Verdict  Verdict `json:"verdict"`
	Strength float64 `json:"strength"` // always in [0,1]
	Reason   string  `json:"reason"`
}
