// Command scan analyzes the configured universe once and prints a table.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"

	"IntradayScope/internal/app"
	"IntradayScope/internal/model"
	"IntradayScope/internal/notifier"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	app.SetupLogger(cfg.Log.Level, true)

	col, closeCache, err := app.NewCollector(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init collector")
	}
	defer closeCache()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	started := time.Now()
	results := col.AnalyzeAll(ctx, cfg.Symbols)
	render(results)
	log.Info().Dur("took", time.Since(started)).Int("symbols", len(results)).Msg("scan complete")
}

func render(results []model.ScanResult) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	t.SetTitle("Intraday scan")
	t.AppendHeader(table.Row{"Symbol", "Close", "Chg %", "RSI", "MACD", "Signal", "Suggestion"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	counts := map[model.Suggestion]int{}
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			t.AppendRow(table.Row{r.Symbol, "", "", "", "", "", text.FgRed.Sprint("error: " + r.Err.Error())})
			continue
		}
		a := r.Analysis
		counts[a.Suggestion]++
		t.AppendRow(table.Row{
			r.Symbol,
			notifier.FormatValue(a.LastClose),
			notifier.FormatValue(a.ChangePct),
			notifier.FormatValue(a.Snapshot.RSI),
			notifier.FormatValue(a.Snapshot.MACD),
			notifier.FormatValue(a.Snapshot.Signal),
			colorize(a.Suggestion),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Buy/Sell/Hold", "",
		textCounts(counts[model.SuggestionBuy], counts[model.SuggestionSell], counts[model.SuggestionHold], failed)})
	t.Render()
}

func colorize(s model.Suggestion) string {
	switch s {
	case model.SuggestionBuy:
		return text.FgGreen.Sprint(string(s))
	case model.SuggestionSell:
		return text.FgRed.Sprint(string(s))
	default:
		return string(s)
	}
}

func textCounts(buy, sell, hold, failed int) string {
	s := fmt.Sprintf("%d/%d/%d", buy, sell, hold)
	if failed > 0 {
		s += fmt.Sprintf(" (%d failed)", failed)
	}
	return s
}
