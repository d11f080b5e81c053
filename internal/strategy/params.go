package strategy

import "fmt"

// Params holds the indicator windows and classification thresholds.
type Params struct {
	RSIWindow  int     `yaml:"rsi_window"`
	FastSpan   int     `yaml:"fast_span"`
	SlowSpan   int     `yaml:"slow_span"`
	SignalSpan int     `yaml:"signal_span"`
	Oversold   float64 `yaml:"oversold"`
	Overbought float64 `yaml:"overbought"`
}

// DefaultParams returns RSI(14), MACD(12, 26, 9) with 30/70 RSI thresholds.
func DefaultParams() Params {
	return Params{
		RSIWindow:  14,
		FastSpan:   12,
		SlowSpan:   26,
		SignalSpan: 9,
		Oversold:   30,
		Overbought: 70,
	}
}

// WithDefaults fills zero windows and spans from DefaultParams. A zero
// Overbought can never be valid, so it marks the thresholds as unset; a zero
// Oversold is only replaced together with it, which keeps an explicit
// oversold: 0 next to a configured overbought level.
func (p Params) WithDefaults() Params {
	d := DefaultParams()
	if p.RSIWindow == 0 {
		p.RSIWindow = d.RSIWindow
	}
	if p.FastSpan == 0 {
		p.FastSpan = d.FastSpan
	}
	if p.SlowSpan == 0 {
		p.SlowSpan = d.SlowSpan
	}
	if p.SignalSpan == 0 {
		p.SignalSpan = d.SignalSpan
	}
	if p.Overbought == 0 {
		if p.Oversold == 0 {
			p.Oversold = d.Oversold
		}
		p.Overbought = d.Overbought
	}
	return p
}

// Validate checks that windows are positive and thresholds ordered.
func (p Params) Validate() error {
	if p.RSIWindow <= 0 {
		return fmt.Errorf("rsi_window must be positive")
	}
	if p.FastSpan <= 0 || p.SlowSpan <= 0 || p.SignalSpan <= 0 {
		return fmt.Errorf("macd spans must be positive")
	}
	if p.FastSpan >= p.SlowSpan {
		return fmt.Errorf("fast_span (%d) must be shorter than slow_span (%d)", p.FastSpan, p.SlowSpan)
	}
	if p.Oversold < 0 || p.Overbought > 100 || p.Oversold >= p.Overbought {
		return fmt.Errorf("thresholds must satisfy 0 <= oversold < overbought <= 100")
	}
	return nil
}

// WarmupBars is the number of bars after which every indicator is defined
// and the signal line has had a full span to settle.
func (p Params) WarmupBars() int {
	return p.SlowSpan + p.SignalSpan
}
