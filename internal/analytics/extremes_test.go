package analytics

import (
	"math"
	"testing"
)

func TestFindExtremes_Scenario(t *testing.T) {
	res := FindExtremes([]float64{1.0, 0.9, 1.2, 0.8, 1.5})
	if res == nil {
		t.Fatal("expected result")
	}
	if !almostEqual(res.GainPct, 87.5) {
		t.Errorf("expected gain 87.5%%, got %.4f", res.GainPct)
	}
	if res.GainFrom != 3 || res.GainTo != 4 {
		t.Errorf("expected gain span 3->4, got %d->%d", res.GainFrom, res.GainTo)
	}
	if math.Abs(res.DrawdownPct-(-100.0/3)) > 1e-6 {
		t.Errorf("expected drawdown -33.33%%, got %.4f", res.DrawdownPct)
	}
	if res.DrawdownFrom != 2 || res.DrawdownTo != 3 {
		t.Errorf("expected drawdown span 2->3, got %d->%d", res.DrawdownFrom, res.DrawdownTo)
	}
}

func TestFindExtremes_TooFewPoints(t *testing.T) {
	if FindExtremes(nil) != nil {
		t.Error("expected nil for empty series")
	}
	if FindExtremes([]float64{1.0}) != nil {
		t.Error("expected nil for single point")
	}
}

// Strict comparisons mean the first occurrence of the best run wins;
// plateaus must not shift the span to a later index.
func TestFindExtremes_PlateauFirstOccurrenceWins(t *testing.T) {
	res := FindExtremes([]float64{1.0, 2.0, 2.0, 2.0})
	if res == nil {
		t.Fatal("expected result")
	}
	if !almostEqual(res.GainPct, 100) {
		t.Errorf("expected gain 100%%, got %.4f", res.GainPct)
	}
	if res.GainFrom != 0 || res.GainTo != 1 {
		t.Errorf("expected first gain span 0->1, got %d->%d", res.GainFrom, res.GainTo)
	}

	res = FindExtremes([]float64{2.0, 1.0, 1.0, 1.0})
	if res.DrawdownFrom != 0 || res.DrawdownTo != 1 {
		t.Errorf("expected first drawdown span 0->1, got %d->%d", res.DrawdownFrom, res.DrawdownTo)
	}
}

func TestFindExtremes_MonotonicSeries(t *testing.T) {
	// Strictly falling: the best gain is still the least-negative step, and
	// the spans must stay ordered.
	res := FindExtremes([]float64{5, 4, 3, 2})
	if res == nil {
		t.Fatal("expected result")
	}
	// The least-bad single step wins the gain slot: 5->4 is -20%.
	if !almostEqual(res.GainPct, -20) {
		t.Errorf("expected best gain -20%% for a falling series, got %.4f", res.GainPct)
	}
	if res.GainFrom != 0 || res.GainTo != 1 {
		t.Errorf("expected gain span 0->1, got %d->%d", res.GainFrom, res.GainTo)
	}
	if res.DrawdownFrom != 0 || res.DrawdownTo != 3 {
		t.Errorf("expected drawdown span 0->3, got %d->%d", res.DrawdownFrom, res.DrawdownTo)
	}

	// Strictly rising: mirror case. The "drawdown" is the smallest step up
	// from the running high, 3->4 here.
	res = FindExtremes([]float64{1, 2, 3, 4})
	if res.GainFrom != 0 || res.GainTo != 3 {
		t.Errorf("expected gain span 0->3, got %d->%d", res.GainFrom, res.GainTo)
	}
	if math.Abs(res.DrawdownPct-100.0/3) > 1e-6 {
		t.Errorf("expected drawdown +33.33%% for a rising series, got %.4f", res.DrawdownPct)
	}
	if res.DrawdownFrom != 2 || res.DrawdownTo != 3 {
		t.Errorf("expected drawdown span 2->3, got %d->%d", res.DrawdownFrom, res.DrawdownTo)
	}
}

// A new low must still be evaluated against the old high in the same step.
func TestFindExtremes_NewLowAgainstOldHigh(t *testing.T) {
	res := FindExtremes([]float64{2.0, 0.5})
	if res == nil {
		t.Fatal("expected result")
	}
	if !almostEqual(res.DrawdownPct, -75) {
		t.Errorf("expected drawdown -75%%, got %.4f", res.DrawdownPct)
	}
	if res.DrawdownFrom != 0 || res.DrawdownTo != 1 {
		t.Errorf("expected drawdown span 0->1, got %d->%d", res.DrawdownFrom, res.DrawdownTo)
	}
}
