package advisor

import (
	"math"

	"market-watch/src/helpers"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------
// Engine
// -----------------------------------------------------------------------------

// Default thresholds, percent units. Symmetric by default but tunable
// independently through config.
const (
	DefaultBuyThresholdPct  = 2.0
	DefaultSellThresholdPct = 2.0
)

// Engine turns a snapshot into a BUY/SELL/HOLD recommendation. It is pure:
// no hidden state, same input always yields the same output.
type Engine struct {
	BuyThresholdPct  float64
	SellThresholdPct float64
}

// -----------------------------------------------------------------------------

// NewEngine builds an engine from config, filling in defaults for unset
// (zero or negative) thresholds.
func NewEngine(cfg models.MAdvisorConfig) *Engine {
	e := &Engine{
		BuyThresholdPct:  cfg.BuyThresholdPct,
		SellThresholdPct: cfg.SellThresholdPct,
	}
	if e.BuyThresholdPct <= 0 {
		e.BuyThresholdPct = DefaultBuyThresholdPct
	}
	if e.SellThresholdPct <= 0 {
		e.SellThresholdPct = DefaultSellThresholdPct
	}
	return e
}

// -----------------------------------------------------------------------------

// Evaluate derives a recommendation from the snapshot's change percent.
// Threshold boundaries are inclusive: exactly +T_buy is a BUY, exactly
// -T_sell is a SELL. Strength is clamped to [0,1] for any finite input.
func (e *Engine) Evaluate(snapshot models.MStockSnapshot) (models.MRecommendation, error) {
	p := snapshot.ChangePercent
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return models.MRecommendation{}, &helpers.InvalidSnapshotError{
			Symbol: snapshot.Symbol,
			Reason: "change percent is not a finite number",
		}
	}

	switch {
	case p >= e.BuyThresholdPct:
		return models.MRecommendation{
			Verdict:  models.VerdictBuy,
			Strength: clamp01(p / (2 * e.BuyThresholdPct)),
			Reason:   "strong positive momentum",
		}, nil

	case p <= -e.SellThresholdPct:
		return models.MRecommendation{
			Verdict:  models.VerdictSell,
			Strength: clamp01(-p / (2 * e.SellThresholdPct)),
			Reason:   "strong negative momentum",
		}, nil

	default:
		return models.MRecommendation{
			Verdict:  models.VerdictHold,
			Strength: clamp01(1 - math.Abs(p)/e.BuyThresholdPct),
			Reason:   "within neutral band",
		}, nil
	}
}

// -----------------------------------------------------------------------------

// EvaluateWithNews runs Evaluate and annotates the reason when a news item
// names the symbol in its impact map. News never changes the verdict, only
// the rationale shown to the user.
func (e *Engine) EvaluateWithNews(snapshot models.MStockSnapshot, news []models.MNewsItem) (models.MRecommendation, error) {
	rec, err := e.Evaluate(snapshot)
	if err != nil {
		return rec, err
	}

	for _, item := range news {
		direction, ok := item.Impact[snapshot.Symbol]
		if !ok {
			continue
		}
		if direction == models.ImpactUp {
			rec.Reason += ", positive news"
		} else {
			rec.Reason += ", negative news"
		}
		break
	}
	return rec, nil
}

// -----------------------------------------------------------------------------

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
