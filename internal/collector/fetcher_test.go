package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIntervalDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1m", time.Minute},
		{"15m", 15 * time.Minute},
		{"1h", time.Hour},
		{"1d", 24 * time.Hour},
		{"1wk", 7 * 24 * time.Hour},
		{"1mo", 30 * 24 * time.Hour},
	}
	for _, tt := range tests {
		got, err := IntervalDuration(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "m", "0m", "-5m", "15s", "abc"} {
		_, err := IntervalDuration(bad)
		assert.Error(t, err, bad)
	}
}

func TestWindowString(t *testing.T) {
	assert.Equal(t, "1mo/15m", Window{Period: "1mo", Interval: "15m"}.String())
}
