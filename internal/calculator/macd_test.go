package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMACD_Flat(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 50
	}
	res := MACD(closes, 12, 26, 9)
	require.Len(t, res.MACD, 30)
	require.Len(t, res.Signal, 30)
	for i := range closes {
		assert.InDelta(t, 0, res.MACD[i], 1e-12)
		assert.InDelta(t, 0, res.Signal[i], 1e-12)
		assert.InDelta(t, 0, res.Histogram[i], 1e-12)
	}
}

func TestMACD_FirstBarsByHand(t *testing.T) {
	closes := []float64{100, 110, 105}
	res := MACD(closes, 12, 26, 9)

	fast, slow := 2.0/13, 2.0/27
	f1 := fast*110 + (1-fast)*100
	s1 := slow*110 + (1-slow)*100
	m1 := f1 - s1
	f2 := fast*105 + (1-fast)*f1
	s2 := slow*105 + (1-slow)*s1
	m2 := f2 - s2

	assert.Equal(t, 0.0, res.MACD[0])
	assert.InDelta(t, m1, res.MACD[1], 1e-12)
	assert.InDelta(t, m2, res.MACD[2], 1e-12)

	sig1 := 0.2 * m1
	sig2 := 0.2*m2 + 0.8*sig1
	assert.Equal(t, 0.0, res.Signal[0])
	assert.InDelta(t, sig1, res.Signal[1], 1e-12)
	assert.InDelta(t, sig2, res.Signal[2], 1e-12)
	assert.InDelta(t, m2-sig2, res.Histogram[2], 1e-12)
}

func TestMACD_RisingTrendIsPositive(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	res := MACD(closes, 12, 26, 9)
	for i := 1; i < len(closes); i++ {
		assert.Greater(t, res.MACD[i], 0.0)
	}
}

func TestMACD_Deterministic(t *testing.T) {
	closes := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}
	a := MACD(closes, 12, 26, 9)
	b := MACD(closes, 12, 26, 9)
	assert.Equal(t, a, b)
}

func TestMACD_Empty(t *testing.T) {
	res := MACD(nil, 12, 26, 9)
	assert.Empty(t, res.MACD)
	assert.Empty(t, res.Signal)
	assert.Empty(t, res.Histogram)
}
