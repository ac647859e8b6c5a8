package analytics

// MovingAverage computes the simple moving average of values over the given
// window. The output has the same length as the input; entries before index
// window-1 are nil (insufficient history). A single running sum keeps the
// cost linear in len(values) no matter how large the window is, which
// matters when several averages run over years of daily data.
func MovingAverage(values []float64, window int) []*float64 {
	out := make([]*float64, len(values))
	if window < 1 {
		return out
	}
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			avg := sum / float64(window)
			out[i] = &avg
		}
	}
	return out
}
