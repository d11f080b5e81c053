package calculator

// Alpha returns the smoothing factor 2/(span+1) for an EMA span.
func Alpha(span int) float64 {
	return 2.0 / (float64(span) + 1.0)
}

// EMA computes the exponential moving average of values with the given span.
// The recurrence is seeded with the first sample:
//
//	ema[0] = values[0]
//	ema[i] = α·values[i] + (1-α)·ema[i-1]
func EMA(values []float64, span int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	alpha := Alpha(span)
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}
