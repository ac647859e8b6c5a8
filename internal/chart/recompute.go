package chart

import (
	"time"

	"FundTrend/internal/analytics"
	"FundTrend/internal/model"
)

// Recompute runs the full derivation pipeline for one interaction cycle:
// range filter, per-spec moving averages, zoom-window mapping, then extremes
// over the visible slice only. It is pure; today is injected so tests can
// pin the calendar.
//
// Moving averages are computed over the whole filtered range and sliced for
// display by the chart's zoom, never recomputed over the visible sub-range.
// Statistics and highlight spans, by contrast, are always relative to the
// zoomed sub-range.
func Recompute(st ViewState, raw model.NetValueSeries, name, banner string, today time.Time) model.Payload {
	filtered := analytics.FilterRange(raw, st.RangeKey, today)
	n := len(filtered)

	p := model.Payload{
		Code:           st.Code,
		Name:           name,
		RangeKey:       st.RangeKey,
		Categories:     filtered.Dates(),
		UnitValues:     filtered.Units(),
		AccValues:      filtered.AccValues(),
		MovingAverages: make(map[string][]*float64, len(st.MAs)),
		Zoom:           st.Zoom,
		Banner:         banner,
	}

	for _, spec := range st.MAs {
		p.MovingAverages[spec.Label] = analytics.MovingAverage(p.UnitValues, spec.Window)
	}

	start, end, ok := analytics.MapZoom(st.Zoom, n)
	if !ok {
		p.NoData = true
		return p
	}

	p.VisibleStart = filtered[start].DateString()
	p.VisibleEnd = filtered[end].DateString()
	p.VisibleCount = end - start + 1

	ex := analytics.FindExtremes(p.UnitValues[start : end+1])
	if ex == nil {
		return p
	}

	gainFrom := filtered[start+ex.GainFrom].DateString()
	gainTo := filtered[start+ex.GainTo].DateString()
	ddFrom := filtered[start+ex.DrawdownFrom].DateString()
	ddTo := filtered[start+ex.DrawdownTo].DateString()

	p.Extremes = &model.ExtremeView{
		GainPct:      ex.GainPct,
		GainFrom:     gainFrom,
		GainTo:       gainTo,
		GainDays:     ex.GainTo - ex.GainFrom + 1,
		DrawdownPct:  ex.DrawdownPct,
		DrawdownFrom: ddFrom,
		DrawdownTo:   ddTo,
		DrawdownDays: ex.DrawdownTo - ex.DrawdownFrom + 1,
	}
	if st.HighlightGain {
		p.Highlights = append(p.Highlights, model.HighlightSpan{
			Kind: model.HighlightGain, From: gainFrom, To: gainTo,
		})
	}
	if st.HighlightDrawdown {
		p.Highlights = append(p.Highlights, model.HighlightSpan{
			Kind: model.HighlightDrawdown, From: ddFrom, To: ddTo,
		})
	}
	return p
}
