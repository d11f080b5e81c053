package strategy

import (
	"errors"
	"fmt"
	"time"

	"IntradayScope/internal/calculator"
	"IntradayScope/internal/model"
)

// Indicators holds the full derived series, aligned with the input closes.
// NaN marks a value that is not defined at that index.
type Indicators struct {
	RSI       []float64
	MACD      []float64
	Signal    []float64
	Histogram []float64
}

// Compute derives RSI and MACD/Signal from closes.
func Compute(closes []float64, p Params) Indicators {
	macd := calculator.MACD(closes, p.FastSpan, p.SlowSpan, p.SignalSpan)
	return Indicators{
		RSI:       calculator.RSISeries(closes, p.RSIWindow),
		MACD:      macd.MACD,
		Signal:    macd.Signal,
		Histogram: macd.Histogram,
	}
}

// Snapshot takes the last value of every series.
func (ind Indicators) Snapshot() model.IndicatorSnapshot {
	return model.IndicatorSnapshot{
		RSI:       model.Value(calculator.Last(ind.RSI)),
		MACD:      model.Value(calculator.Last(ind.MACD)),
		Signal:    model.Value(calculator.Last(ind.Signal)),
		Histogram: model.Value(calculator.Last(ind.Histogram)),
	}
}

// Evaluate validates the series, computes the indicators and classifies the
// latest values. A malformed series or invalid params are returned as an
// error; an empty series yields a Hold with every indicator unavailable.
func Evaluate(series *model.PriceSeries, p Params) (*model.Analysis, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParams, err)
	}

	a := &model.Analysis{
		Suggestion: model.SuggestionHold,
		Closes:     []model.ClosePoint{},
		AnalyzedAt: time.Now(),
	}
	if series != nil {
		a.Symbol = series.Symbol
		a.Period = series.Period
		a.Interval = series.Interval
	}

	if err := ValidateSeries(series); err != nil {
		if errors.Is(err, ErrInsufficientData) {
			return a, nil
		}
		return nil, err
	}

	a.Bars = series.Len()
	closes := series.Closes()
	a.Snapshot = Compute(closes, p).Snapshot()
	a.Suggestion = Classify(a.Snapshot, p)

	a.Closes = make([]model.ClosePoint, len(series.Bars))
	for i, b := range series.Bars {
		a.Closes[i] = model.ClosePoint{Time: b.Time, Close: b.Close}
	}
	a.LastClose = model.Value(calculator.Last(closes))
	if high, low, err := calculator.WindowRange(series.Bars); err == nil {
		a.High = model.Value(high)
		a.Low = model.Value(low)
	}
	if change, err := calculator.ChangePercent(series.Bars); err == nil {
		a.ChangePct = model.Value(change)
	}
	return a, nil
}
