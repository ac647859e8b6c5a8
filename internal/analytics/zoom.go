package analytics

import (
	"math"

	"FundTrend/internal/model"
)

// MapZoom converts zoom percentages into an inclusive index range over a
// series of length n. Indices are clamped to [0, n-1] and swapped if the
// percentages arrive inverted. ok is false when n is 0, which callers
// treat as "no data" rather than an error.
func MapZoom(z model.ZoomWindow, n int) (start, end int, ok bool) {
	if n <= 0 {
		return 0, 0, false
	}
	start = percentToIndex(z.Start, n)
	end = percentToIndex(z.End, n)
	if end < start {
		start, end = end, start
	}
	return start, end, true
}

// percentToIndex rounds half away from zero; the .5 boundary choice is
// observable in highlight-span edges and pinned by tests.
func percentToIndex(percent float64, n int) int {
	idx := int(math.Round(percent / 100 * float64(n-1)))
	if idx < 0 {
		idx = 0
	}
	if idx > n-1 {
		idx = n - 1
	}
	return idx
}
