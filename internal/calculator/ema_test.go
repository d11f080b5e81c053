package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlpha(t *testing.T) {
	assert.InDelta(t, 2.0/13, Alpha(12), 1e-15)
	assert.InDelta(t, 2.0/27, Alpha(26), 1e-15)
	assert.InDelta(t, 0.2, Alpha(9), 1e-15)
}

func TestEMA_SeededWithFirstSample(t *testing.T) {
	got := EMA([]float64{1, 2, 3}, 3) // alpha 0.5
	require.Len(t, got, 3)
	assert.Equal(t, 1.0, got[0])
	assert.InDelta(t, 1.5, got[1], 1e-12)
	assert.InDelta(t, 2.25, got[2], 1e-12)
}

func TestEMA_Empty(t *testing.T) {
	assert.Empty(t, EMA(nil, 12))
}

func TestEMA_Constant(t *testing.T) {
	values := []float64{42, 42, 42, 42, 42}
	for _, v := range EMA(values, 26) {
		assert.InDelta(t, 42.0, v, 1e-9)
	}
}

func TestRollingMean(t *testing.T) {
	got := RollingMean([]float64{1, 2, 3, 4, 5}, 3)
	require.Len(t, got, 5)
	assert.True(t, math.IsNaN(got[0]))
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 2.0, got[2], 1e-12)
	assert.InDelta(t, 3.0, got[3], 1e-12)
	assert.InDelta(t, 4.0, got[4], 1e-12)
}
