package chart

import (
	"fmt"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"FundTrend/internal/model"
)

const (
	seriesUnit = "单位净值"
	seriesAcc  = "累计净值"

	gainAreaColor     = "rgba(244,63,94,0.18)"
	drawdownAreaColor = "rgba(16,185,129,0.18)"

	chartID = "trend"
)

// Posts datazoom events back so the session's zoom window tracks the
// slider; the batch unwrap mirrors how ECharts reports inside-type zooms.
const zoomListenerJS = `
goecharts_` + chartID + `.on('datazoom', function (e) {
    var p = (e.batch && e.batch.length > 0) ? e.batch[0] : e;
    fetch('/api/zoom', {
        method: 'POST',
        headers: {'Content-Type': 'application/json'},
        body: JSON.stringify({start: p.start, end: p.end})
    });
});`

// NewLineChart builds the ECharts line page for a payload: unit and
// accumulated value lines, dashed moving averages, highlight bands for the
// extreme runs, and a zoom slider at the payload's window.
func NewLineChart(p model.Payload) *charts.Line {
	title := p.Code
	if p.Name != "" {
		title = fmt.Sprintf("%s · %s", p.Code, p.Name)
	}
	subtitle := "所选区间暂无数据"
	if !p.NoData {
		subtitle = fmt.Sprintf("区间：%s ~ %s（%d 日）", p.VisibleStart, p.VisibleEnd, p.VisibleCount)
	}
	if p.Banner != "" {
		subtitle = p.Banner
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "基金历史净值趋势",
			Width:     "1100px",
			Height:    "480px",
			ChartID:   chartID,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{
			Show:     opts.Bool(true),
			Selected: map[string]bool{seriesUnit: true, seriesAcc: false},
		}),
		charts.WithXAxisOpts(opts.XAxis{BoundaryGap: opts.Bool(false)}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", Start: float32(p.Zoom.Start), End: float32(p.Zoom.End)},
			opts.DataZoom{Type: "slider", Start: float32(p.Zoom.Start), End: float32(p.Zoom.End)},
		),
	)

	line.SetXAxis(p.Categories)
	line.AddSeries(seriesUnit, floatData(p.UnitValues), unitSeriesOpts(p)...)
	line.AddSeries(seriesAcc, nullableData(p.AccValues),
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	)
	for _, label := range sortedMALabels(p.MovingAverages) {
		line.AddSeries(label, nullableData(p.MovingAverages[label]),
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Width: 1.5}),
		)
	}

	line.AddJSFuncs(zoomListenerJS)
	return line
}

// unitSeriesOpts attaches the highlight bands to the unit-value line. The
// band rectangles span the value range of the filtered series so they read
// as vertical date bands on a scaled y-axis.
func unitSeriesOpts(p model.Payload) []charts.SeriesOpts {
	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true), ShowSymbol: opts.Bool(false)}),
	}
	if len(p.Highlights) == 0 || len(p.UnitValues) == 0 {
		return seriesOpts
	}
	lo, hi := p.UnitValues[0], p.UnitValues[0]
	for _, v := range p.UnitValues {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	for _, span := range p.Highlights {
		color := gainAreaColor
		if span.Kind == model.HighlightDrawdown {
			color = drawdownAreaColor
		}
		seriesOpts = append(seriesOpts, charts.WithMarkAreaNameCoordItemOpts(opts.MarkAreaNameCoordItem{
			Coordinate0: []interface{}{span.From, lo},
			Coordinate1: []interface{}{span.To, hi},
			ItemStyle:   &opts.ItemStyle{Color: color},
		}))
	}
	return seriesOpts
}

func sortedMALabels(mas map[string][]*float64) []string {
	labels := make([]string, 0, len(mas))
	for label := range mas {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		wi, wj := 0, 0
		if s, ok := model.MAByLabel(labels[i]); ok {
			wi = s.Window
		}
		if s, ok := model.MAByLabel(labels[j]); ok {
			wj = s.Window
		}
		if wi != wj {
			return wi < wj
		}
		return labels[i] < labels[j]
	})
	return labels
}

func floatData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}

func nullableData(values []*float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		if v == nil {
			data[i] = opts.LineData{Value: nil}
		} else {
			data[i] = opts.LineData{Value: *v}
		}
	}
	return data
}
