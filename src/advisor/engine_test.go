package advisor

import (
	"errors"
	"math"
	"testing"

	"market-watch/src/helpers"
	"market-watch/src/models"
)

// -----------------------------------------------------------------------------

func snapshot(changePct float64) models.MStockSnapshot {
	return models.MStockSnapshot{Symbol: "AAPL", Price: 100, ChangePercent: changePct}
}

// -----------------------------------------------------------------------------

func TestEvaluateVerdicts(t *testing.T) {
	engine := NewEngine(models.MAdvisorConfig{})

	cases := []struct {
		name      string
		changePct float64
		verdict   models.Verdict
		strength  float64
	}{
		{"exactly buy threshold", 2.0, models.VerdictBuy, 0.5},
		{"just below buy threshold", 1.99, models.VerdictHold, 0.005},
		{"exactly sell threshold", -2.0, models.VerdictSell, 0.5},
		{"just above sell threshold", -1.99, models.VerdictHold, 0.005},
		{"flat", 0.0, models.VerdictHold, 1.0},
		{"strong rally", 4.0, models.VerdictBuy, 1.0},
		{"extreme rally clamps", 50.0, models.VerdictBuy, 1.0},
		{"extreme drop clamps", -50.0, models.VerdictSell, 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, err := engine.Evaluate(snapshot(tc.changePct))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Verdict != tc.verdict {
				t.Errorf("verdict = %v, want %v", rec.Verdict, tc.verdict)
			}
			if math.Abs(rec.Strength-tc.strength) > 1e-9 {
				t.Errorf("strength = %v, want %v", rec.Strength, tc.strength)
			}
			if rec.Strength < 0 || rec.Strength > 1 {
				t.Errorf("strength %v outside [0,1]", rec.Strength)
			}
		})
	}
}

// -----------------------------------------------------------------------------

func TestEvaluateDeterministic(t *testing.T) {
	engine := NewEngine(models.MAdvisorConfig{})
	first, err := engine.Evaluate(snapshot(3.1))
	if err != nil {
		t.Fatal(err)
	}
	second, err := engine.Evaluate(snapshot(3.1))
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same input gave different outputs: %+v vs %+v", first, second)
	}
}

// -----------------------------------------------------------------------------

func TestEvaluateRejectsNonFinite(t *testing.T) {
	engine := NewEngine(models.MAdvisorConfig{})

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := engine.Evaluate(snapshot(bad))
		var invalid *helpers.InvalidSnapshotError
		if !errors.As(err, &invalid) {
			t.Errorf("change %v: got %v, want InvalidSnapshotError", bad, err)
		}
	}
}

// -----------------------------------------------------------------------------

func TestCustomThresholds(t *testing.T) {
	engine := NewEngine(models.MAdvisorConfig{BuyThresholdPct: 5, SellThresholdPct: 1})

	rec, err := engine.Evaluate(snapshot(3.0))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Verdict != models.VerdictHold {
		t.Errorf("3%% with buy threshold 5 should HOLD, got %v", rec.Verdict)
	}

	rec, err = engine.Evaluate(snapshot(-1.0))
	if err != nil {
		t.Fatal(err)
	}
	if rec.Verdict != models.VerdictSell {
		t.Errorf("-1%% with sell threshold 1 should SELL, got %v", rec.Verdict)
	}
}

// -----------------------------------------------------------------------------

func TestDefaultsForUnsetThresholds(t *testing.T) {
	engine := NewEngine(models.MAdvisorConfig{BuyThresholdPct: 0, SellThresholdPct: -3})
	if engine.BuyThresholdPct != DefaultBuyThresholdPct {
		t.Errorf("buy threshold = %v, want default", engine.BuyThresholdPct)
	}
	if engine.SellThresholdPct != DefaultSellThresholdPct {
		t.Errorf("sell threshold = %v, want default", engine.SellThresholdPct)
	}
}

// -----------------------------------------------------------------------------

func TestEvaluateWithNewsAnnotatesReason(t *testing.T) {
	engine := NewEngine(models.MAdvisorConfig{})
	items := []models.MNewsItem{
		{
			Headline: "Apple announces record iPhone sales",
			Impact:   map[string]models.Direction{"AAPL": models.ImpactUp},
		},
	}

	rec, err := engine.EvaluateWithNews(snapshot(3.0), items)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Verdict != models.VerdictBuy {
		t.Errorf("news must not change the verdict, got %v", rec.Verdict)
	}
	if rec.Reason != "strong positive momentum, positive news" {
		t.Errorf("reason = %q", rec.Reason)
	}

	// Unrelated news leaves the reason untouched
	rec, err = engine.EvaluateWithNews(models.MStockSnapshot{Symbol: "MSFT", ChangePercent: 3.0}, items)
	if err != nil {
		t.Fatal(err)
	}
	if rec.Reason != "strong positive momentum" {
		t.Errorf("reason = %q", rec.Reason)
	}
}
