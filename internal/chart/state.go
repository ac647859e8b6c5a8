package chart

import (
	"sort"

	"FundTrend/internal/model"
)

// ViewState is one session's current selection: fund, lookback range,
// enabled moving averages, zoom window, and highlight toggles. It is an
// immutable value replaced wholesale on each interaction event; the With*
// methods return modified copies.
type ViewState struct {
	Code              string
	RangeKey          model.RangeKey
	MAs               []model.MASpec // sorted by window
	Zoom              model.ZoomWindow
	HighlightGain     bool
	HighlightDrawdown bool
}

// DefaultState is the session-start selection.
func DefaultState(code string, rangeKey model.RangeKey) ViewState {
	if !rangeKey.Valid() {
		rangeKey = model.Range6M
	}
	return ViewState{
		Code:              code,
		RangeKey:          rangeKey,
		Zoom:              model.FullZoom,
		HighlightGain:     true,
		HighlightDrawdown: true,
	}
}

// WithCode switches the selected fund. The zoom window survives; only a
// range change resets it.
func (s ViewState) WithCode(code string) ViewState {
	s.Code = code
	return s
}

// WithRange switches the lookback window and resets the zoom to the full
// range.
func (s ViewState) WithRange(key model.RangeKey) ViewState {
	s.RangeKey = key
	s.Zoom = model.FullZoom
	return s
}

// WithZoom applies a zoom-change event from the chart.
func (s ViewState) WithZoom(z model.ZoomWindow) ViewState {
	s.Zoom = z
	return s
}

// WithMAs replaces the enabled moving averages. Duplicated labels collapse;
// the stored set is sorted by window so derived output is deterministic.
func (s ViewState) WithMAs(specs []model.MASpec) ViewState {
	seen := make(map[string]bool, len(specs))
	out := make([]model.MASpec, 0, len(specs))
	for _, spec := range specs {
		if spec.Window < 1 || seen[spec.Label] {
			continue
		}
		seen[spec.Label] = true
		out = append(out, spec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Window < out[j].Window })
	s.MAs = out
	return s
}

// WithHighlights toggles the gain/drawdown shading.
func (s ViewState) WithHighlights(gain, drawdown bool) ViewState {
	s.HighlightGain = gain
	s.HighlightDrawdown = drawdown
	return s
}
