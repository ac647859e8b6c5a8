package analytics

import (
	"time"

	"FundTrend/internal/model"
)

// FilterRange returns the subsequence of series whose dates fall inside the
// lookback window named by key, evaluated against today. The result shares
// the input's backing array; callers treat both as read-only. An empty
// result is valid and means "no data in range".
func FilterRange(series model.NetValueSeries, key model.RangeKey, today time.Time) model.NetValueSeries {
	switch key {
	case model.RangeAll:
		return series
	case model.RangeYTD:
		cutoff := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, today.Location())
		return filterFrom(series, cutoff)
	default:
		days := key.LookbackDays()
		if days <= 0 {
			// Unknown key behaves like "all" rather than hiding data.
			return series
		}
		y, m, d := today.Date()
		cutoff := time.Date(y, m, d, 0, 0, 0, 0, today.Location()).AddDate(0, 0, -days)
		return filterFrom(series, cutoff)
	}
}

// filterFrom keeps observations whose calendar date is on or after cutoff.
// The series is sorted ascending, so the result is a tail slice.
func filterFrom(series model.NetValueSeries, cutoff time.Time) model.NetValueSeries {
	for i, o := range series {
		t := o.Time()
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		if !day.Before(cutoff) {
			return series[i:]
		}
	}
	return nil
}
