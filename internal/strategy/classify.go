package strategy

import "IntradayScope/internal/model"

// Classify maps the latest indicator values to a suggestion.
//
//	RSI < oversold   and MACD > Signal  → Buy
//	RSI > overbought and MACD < Signal  → Sell
//	anything else, or a missing value   → Hold
func Classify(snap model.IndicatorSnapshot, p Params) model.Suggestion {
	if !snap.Complete() {
		return model.SuggestionHold
	}
	rsi, macd, signal := *snap.RSI, *snap.MACD, *snap.Signal
	switch {
	case rsi < p.Oversold && macd > signal:
		return model.SuggestionBuy
	case rsi > p.Overbought && macd < signal:
		return model.SuggestionSell
	default:
		return model.SuggestionHold
	}
}
