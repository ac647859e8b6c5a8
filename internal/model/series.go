package model

import "time"

// DateLayout is the display format for all observation dates.
const DateLayout = "2006-01-02"

// Observation is one trading day's reported net value.
type Observation struct {
	Timestamp int64    `json:"x"`             // milliseconds since epoch
	Unit      float64  `json:"y"`             // per-share net asset value
	Acc       *float64 `json:"acc,omitempty"` // accumulated value, nil when not reported
}

// Time returns the observation's local time.
func (o Observation) Time() time.Time {
	return time.UnixMilli(o.Timestamp)
}

// DateString formats the observation date as YYYY-MM-DD.
func (o Observation) DateString() string {
	return o.Time().Format(DateLayout)
}

// NetValueSeries holds one fund's history, ordered by Timestamp ascending
// with no duplicate timestamps. Derived views are always new slices.
type NetValueSeries []Observation

// Units extracts the unit-value column.
func (s NetValueSeries) Units() []float64 {
	units := make([]float64, len(s))
	for i, o := range s {
		units[i] = o.Unit
	}
	return units
}

// Dates extracts the formatted date column.
func (s NetValueSeries) Dates() []string {
	dates := make([]string, len(s))
	for i, o := range s {
		dates[i] = o.DateString()
	}
	return dates
}

// AccValues extracts the accumulated-value column; nil where absent.
func (s NetValueSeries) AccValues() []*float64 {
	accs := make([]*float64, len(s))
	for i, o := range s {
		accs[i] = o.Acc
	}
	return accs
}
