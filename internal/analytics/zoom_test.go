package analytics

import (
	"testing"

	"FundTrend/internal/model"
)

func TestMapZoom_FullWindow(t *testing.T) {
	for _, n := range []int{1, 2, 5, 250} {
		start, end, ok := MapZoom(model.FullZoom, n)
		if !ok {
			t.Fatalf("n=%d: expected ok", n)
		}
		if start != 0 || end != n-1 {
			t.Errorf("n=%d: expected (0,%d), got (%d,%d)", n, n-1, start, end)
		}
	}
}

func TestMapZoom_DegeneratePercent(t *testing.T) {
	start, end, ok := MapZoom(model.ZoomWindow{Start: 50, End: 50}, 11)
	if !ok {
		t.Fatal("expected ok")
	}
	if start != end || start != 5 {
		t.Errorf("expected single index 5, got (%d,%d)", start, end)
	}
}

func TestMapZoom_InvertedPercentagesSwap(t *testing.T) {
	start, end, ok := MapZoom(model.ZoomWindow{Start: 80, End: 20}, 11)
	if !ok {
		t.Fatal("expected ok")
	}
	if start != 2 || end != 8 {
		t.Errorf("expected (2,8), got (%d,%d)", start, end)
	}
}

func TestMapZoom_EmptySeries(t *testing.T) {
	if _, _, ok := MapZoom(model.FullZoom, 0); ok {
		t.Error("expected ok=false for n=0")
	}
}

func TestMapZoom_ClampsOutOfRangePercent(t *testing.T) {
	start, end, ok := MapZoom(model.ZoomWindow{Start: -10, End: 150}, 5)
	if !ok {
		t.Fatal("expected ok")
	}
	if start != 0 || end != 4 {
		t.Errorf("expected (0,4), got (%d,%d)", start, end)
	}
}

// Half boundaries round away from zero: 25% of (n-1)=2 is 0.5 -> index 1.
func TestMapZoom_HalfBoundary(t *testing.T) {
	tests := []struct {
		percent    float64
		n          int
		wantIndex  int
	}{
		{25, 3, 1},
		{75, 3, 2},
		{12.5, 5, 1},
		{37.5, 5, 2},
	}
	for _, tt := range tests {
		got := percentToIndex(tt.percent, tt.n)
		if got != tt.wantIndex {
			t.Errorf("percent %.1f n=%d: expected index %d, got %d", tt.percent, tt.n, tt.wantIndex, got)
		}
	}
}
