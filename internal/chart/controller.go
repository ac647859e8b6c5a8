package chart

import (
	"context"
	"fmt"
	"sync"
	"time"

	"FundTrend/internal/ingest"
	"FundTrend/internal/model"
)

// FetchFunc supplies a fund's raw history for one interaction cycle.
type FetchFunc func(ctx context.Context, code string) (*ingest.Result, error)

// Controller holds one session's view state and the last committed raw
// series, recomputing the rendering payload on demand. Every mutation bumps
// an interaction sequence number; a fetch that resolves after a newer
// interaction is discarded rather than committed (last writer wins by
// interaction order, not arrival order).
type Controller struct {
	mu         sync.Mutex
	fetch      FetchFunc
	state      ViewState
	seq        uint64
	series     model.NetValueSeries
	seriesCode string
	name       string
	now        func() time.Time
}

// NewController creates a Controller starting from the given state.
func NewController(fetch FetchFunc, st ViewState) *Controller {
	return &Controller{fetch: fetch, state: st, now: time.Now}
}

// State returns the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetCode selects another fund.
func (c *Controller) SetCode(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if code == c.state.Code {
		return
	}
	c.seq++
	c.state = c.state.WithCode(code)
}

// SetRange switches the lookback window, resetting the zoom.
func (c *Controller) SetRange(key model.RangeKey) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = c.state.WithRange(key)
}

// SetZoom applies a zoom-change event. The enabled averages are untouched.
func (c *Controller) SetZoom(z model.ZoomWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = c.state.WithZoom(z)
}

// SetMAs replaces the enabled moving averages by label, ignoring labels
// that are not offered. The zoom window is untouched.
func (c *Controller) SetMAs(labels []string) {
	specs := make([]model.MASpec, 0, len(labels))
	for _, l := range labels {
		if spec, ok := model.MAByLabel(l); ok {
			specs = append(specs, spec)
		}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	c.state = c.state.WithMAs(specs)
}

// SetHighlights toggles the gain/drawdown shading; nil leaves a toggle as is.
func (c *Controller) SetHighlights(gain, drawdown *bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, d := c.state.HighlightGain, c.state.HighlightDrawdown
	if gain != nil {
		g = *gain
	}
	if drawdown != nil {
		d = *drawdown
	}
	c.seq++
	c.state = c.state.WithHighlights(g, d)
}

// Payload fetches the selected fund's history and recomputes the rendering
// payload for the current state. A fetch failure surfaces as a banner while
// the previously committed series keeps rendering; a fetch that lost the
// race against a newer interaction is dropped entirely.
func (c *Controller) Payload(ctx context.Context) model.Payload {
	c.mu.Lock()
	st := c.state
	seq := c.seq
	c.mu.Unlock()

	res, err := c.fetch(ctx, st.Code)

	c.mu.Lock()
	defer c.mu.Unlock()

	stale := seq != c.seq
	if stale {
		st = c.state
	} else if err == nil {
		c.series = res.Series
		c.seriesCode = res.Code
		c.name = res.Name
	}

	var banner string
	if !stale && err != nil {
		banner = fmt.Sprintf("数据加载失败：%v", err)
	}

	series := c.series
	name := c.name
	if c.seriesCode != st.Code {
		// Committed data belongs to another fund; render "no data" instead
		// of someone else's series.
		series = nil
		name = ""
	}
	return Recompute(st, series, name, banner, c.now())
}
