package model

// HighlightKind tags a highlighted span on the chart.
type HighlightKind string

const (
	HighlightGain     HighlightKind = "gain"
	HighlightDrawdown HighlightKind = "drawdown"
)

// HighlightSpan marks a date range to shade on the chart.
type HighlightSpan struct {
	Kind HighlightKind `json:"kind"`
	From string        `json:"from"`
	To   string        `json:"to"`
}

// ExtremeView is the side-panel form of an ExtremeResult, with indices
// resolved to dates of the visible sub-range.
type ExtremeView struct {
	GainPct      float64 `json:"gain_pct"`
	GainFrom     string  `json:"gain_from"`
	GainTo       string  `json:"gain_to"`
	GainDays     int     `json:"gain_days"`
	DrawdownPct  float64 `json:"drawdown_pct"`
	DrawdownFrom string  `json:"drawdown_from"`
	DrawdownTo   string  `json:"drawdown_to"`
	DrawdownDays int     `json:"drawdown_days"`
}

// Payload is everything the rendering layer needs for one interaction cycle.
// All series are aligned to Categories over the filtered range; statistics
// and highlight spans refer to the zoomed sub-range only.
type Payload struct {
	Code           string                `json:"code"`
	Name           string                `json:"name"`
	RangeKey       RangeKey              `json:"range"`
	Categories     []string              `json:"categories"`
	UnitValues     []float64             `json:"unit_values"`
	AccValues      []*float64            `json:"acc_values"`
	MovingAverages map[string][]*float64 `json:"moving_averages"`
	VisibleStart   string                `json:"visible_start,omitempty"`
	VisibleEnd     string                `json:"visible_end,omitempty"`
	VisibleCount   int                   `json:"visible_count"`
	Extremes       *ExtremeView          `json:"extremes,omitempty"`
	Highlights     []HighlightSpan       `json:"highlights,omitempty"`
	Zoom           ZoomWindow            `json:"zoom"`
	NoData         bool                  `json:"no_data"`
	Banner         string                `json:"banner,omitempty"`
}
