package calculator

import "math"

// RSISeries computes the Relative Strength Index for every index of closes,
// using simple means of the trailing window gains and losses.
//
// Index i needs window price changes ending at i, so entries with i < window
// are NaN. When the window holds neither gains nor losses the RSI is NaN (flat
// market); when it holds gains but no losses the RSI is 100.
func RSISeries(closes []float64, window int) []float64 {
	n := len(closes)
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	if window <= 0 || n <= window {
		return out
	}

	// gains[i-1], losses[i-1] describe the change from closes[i-1] to closes[i].
	gains := make([]float64, n-1)
	losses := make([]float64, n-1)
	for i := 1; i < n; i++ {
		change := closes[i] - closes[i-1]
		if change > 0 {
			gains[i-1] = change
		} else if change < 0 {
			losses[i-1] = -change
		}
	}

	avgGains := RollingMean(gains, window)
	avgLosses := RollingMean(losses, window)
	for i := window; i < n; i++ {
		out[i] = rsiFromAverages(avgGains[i-1], avgLosses[i-1])
	}
	return out
}

func rsiFromAverages(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		if avgGain == 0 {
			return math.NaN()
		}
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// Last returns the final element of a series, or NaN for an empty one.
func Last(series []float64) float64 {
	if len(series) == 0 {
		return math.NaN()
	}
	return series[len(series)-1]
}
