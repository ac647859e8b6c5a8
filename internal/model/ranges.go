package model

// RangeKey identifies a named lookback window.
type RangeKey string

const (
	Range1M  RangeKey = "1m"
	Range3M  RangeKey = "3m"
	Range6M  RangeKey = "6m"
	Range1Y  RangeKey = "1y"
	Range3Y  RangeKey = "3y"
	Range5Y  RangeKey = "5y"
	RangeYTD RangeKey = "ytd"
	RangeAll RangeKey = "all"
)

// RangeItem describes one lookback option. Days is 0 for the calendar-rule
// keys (ytd, all).
type RangeItem struct {
	Key   RangeKey
	Label string
	Days  int
}

// RangeItems lists all lookback options in display order.
var RangeItems = []RangeItem{
	{Range1M, "1月", 31},
	{Range3M, "3月", 93},
	{Range6M, "6月", 186},
	{Range1Y, "1年", 365},
	{Range3Y, "3年", 365 * 3},
	{Range5Y, "5年", 365 * 5},
	{RangeYTD, "今年", 0},
	{RangeAll, "成立来", 0},
}

// Valid reports whether k is one of the known range keys.
func (k RangeKey) Valid() bool {
	for _, it := range RangeItems {
		if it.Key == k {
			return true
		}
	}
	return false
}

// LookbackDays returns the day count for a fixed-lookback key, 0 otherwise.
func (k RangeKey) LookbackDays() int {
	for _, it := range RangeItems {
		if it.Key == k {
			return it.Days
		}
	}
	return 0
}

// MASpec declares one simple moving average, keyed by a stable label.
type MASpec struct {
	Label  string `json:"label"`
	Window int    `json:"window"`
}

// StandardMAs lists the moving averages offered in the UI.
var StandardMAs = []MASpec{
	{"MA5", 5},
	{"MA10", 10},
	{"MA20", 20},
}

// MAByLabel resolves a standard moving-average label.
func MAByLabel(label string) (MASpec, bool) {
	for _, s := range StandardMAs {
		if s.Label == label {
			return s, true
		}
	}
	return MASpec{}, false
}

// ZoomWindow is the visible percentage sub-range of the filtered series.
type ZoomWindow struct {
	Start float64 `json:"start"` // percent, 0..100
	End   float64 `json:"end"`
}

// FullZoom is the reset position showing the whole filtered range.
var FullZoom = ZoomWindow{Start: 0, End: 100}

// ExtremeResult reports the largest gain and drawdown runs within a series.
// Indices are relative to the analyzed (visible) sub-range.
type ExtremeResult struct {
	GainPct      float64
	GainFrom     int
	GainTo       int
	DrawdownPct  float64
	DrawdownFrom int
	DrawdownTo   int
}
