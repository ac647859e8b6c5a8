package analytics

import (
	"math"

	"FundTrend/internal/model"
)

// FindExtremes locates the maximum relative gain run and maximum relative
// drawdown run within values, in one forward pass. It returns nil when the
// series has fewer than two points.
//
// The gain at index i is measured against the running minimum seen strictly
// before i's own tracker update, so a value is never compared against
// itself; drawdowns work symmetrically against the running maximum. Strict
// comparisons mean the first occurrence wins on ties.
func FindExtremes(values []float64) *model.ExtremeResult {
	n := len(values)
	if n < 2 {
		return nil
	}

	minVal, minIdx := values[0], 0
	maxVal, maxIdx := values[0], 0
	res := &model.ExtremeResult{
		GainPct:     math.Inf(-1),
		DrawdownPct: math.Inf(1),
	}

	for i := 1; i < n; i++ {
		v := values[i]

		if g := v/minVal - 1; g > res.GainPct {
			res.GainPct = g
			res.GainFrom = minIdx
			res.GainTo = i
		}
		if d := v/maxVal - 1; d < res.DrawdownPct {
			res.DrawdownPct = d
			res.DrawdownFrom = maxIdx
			res.DrawdownTo = i
		}

		if v < minVal {
			minVal, minIdx = v, i
		}
		if v > maxVal {
			maxVal, maxIdx = v, i
		}
	}

	res.GainPct *= 100
	res.DrawdownPct *= 100
	return res
}
