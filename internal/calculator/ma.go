package calculator

import "math"

// RollingMean returns the trailing simple mean of values over window, aligned
// with the input. Entries with fewer than window samples available are NaN.
func RollingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range out {
		if window <= 0 || i+1 < window {
			out[i] = math.NaN()
			continue
		}
		out[i] = mean(values[i+1-window : i+1])
	}
	return out
}

// mean sums the slice directly rather than keeping a running total.
func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
