package notifier

import (
	"fmt"
	"html"
	"strings"
	"time"

	"IntradayScope/internal/model"
)

// FormatValue renders an indicator with two decimals, or N/A when missing.
func FormatValue(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

// SuggestionIcon returns a marker for the suggestion.
func SuggestionIcon(s model.Suggestion) string {
	switch s {
	case model.SuggestionBuy:
		return "🟢"
	case model.SuggestionSell:
		return "🔴"
	default:
		return "⚪"
	}
}

// FormatAnalysis formats one analysis into a Telegram message.
func FormatAnalysis(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>Analysis for %s</b> | %s %s\n\n", html.EscapeString(a.Symbol), a.Period, a.Interval))
	b.WriteString(fmt.Sprintf("RSI: %s\n", FormatValue(a.Snapshot.RSI)))
	b.WriteString(fmt.Sprintf("MACD: %s\n", FormatValue(a.Snapshot.MACD)))
	b.WriteString(fmt.Sprintf("Signal: %s\n", FormatValue(a.Snapshot.Signal)))
	b.WriteString(fmt.Sprintf("\n%s <b>Trading Suggestion:</b> %s\n", SuggestionIcon(a.Suggestion), a.Suggestion))

	if a.LastClose != nil {
		b.WriteString(fmt.Sprintf("\nLast close: %s", FormatValue(a.LastClose)))
		if a.ChangePct != nil {
			b.WriteString(fmt.Sprintf(" (%+.2f%%)", *a.ChangePct))
		}
		b.WriteString("\n")
	}
	if a.High != nil && a.Low != nil {
		b.WriteString(fmt.Sprintf("Range: %s – %s\n", FormatValue(a.Low), FormatValue(a.High)))
	}
	b.WriteString(fmt.Sprintf("Bars: %d\n", a.Bars))
	return b.String()
}

// FormatScan formats a universe scan as a digest: Buy and Sell symbols are
// listed, everything else is counted.
func FormatScan(results []model.ScanResult, at time.Time) string {
	var buys, sells, failed []string
	holds := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed = append(failed, r.Symbol)
		case r.Analysis.Suggestion == model.SuggestionBuy:
			buys = append(buys, fmt.Sprintf("%s (RSI %s)", r.Symbol, FormatValue(r.Analysis.Snapshot.RSI)))
		case r.Analysis.Suggestion == model.SuggestionSell:
			sells = append(sells, fmt.Sprintf("%s (RSI %s)", r.Symbol, FormatValue(r.Analysis.Snapshot.RSI)))
		default:
			holds++
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔎 <b>Scan</b> | %s\n\n", at.Format("2006-01-02 15:04")))
	writeList(&b, "🟢 Buy", buys)
	writeList(&b, "🔴 Sell", sells)
	b.WriteString(fmt.Sprintf("⚪ Hold: %d\n", holds))
	if len(failed) > 0 {
		b.WriteString(fmt.Sprintf("❌ Failed: %s\n", html.EscapeString(strings.Join(failed, ", "))))
	}
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		b.WriteString(fmt.Sprintf("%s: none\n", label))
		return
	}
	b.WriteString(fmt.Sprintf("%s:\n", label))
	for _, it := range items {
		b.WriteString("  • " + html.EscapeString(it) + "\n")
	}
}

// FormatSymbols lists the configured universe.
func FormatSymbols(symbols []string) string {
	return fmt.Sprintf("📋 <b>Symbols</b> (%d)\n\n%s", len(symbols), html.EscapeString(strings.Join(symbols, ", ")))
}

// FormatHelp lists the available commands.
func FormatHelp() string {
	return "Available commands:\n• /analyze SYMBOL\n• /scan\n• /symbols"
}
