package scheduler

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"IntradayScope/internal/collector"
	"IntradayScope/internal/metrics"
	"IntradayScope/internal/model"
	"IntradayScope/internal/notifier"
)

// Sender delivers a formatted message; *notifier.TelegramNotifier satisfies it.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// Scheduler runs the periodic universe scan and answers chat commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Board     *Board
	Symbols   []string
	Notifier  Sender // nil disables digests
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, board *Board, symbols []string, sender Sender) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Board:     board,
		Symbols:   symbols,
		Notifier:  sender,
		Ctx:       ctx,
	}
}

// Register adds the scan job.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for a running scan to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info().Msg("scheduler stopped")
}

// RunScanNow executes the scan immediately (RUN_ON_START, /scan).
func (s *Scheduler) RunScanNow() []model.ScanResult {
	return s.scan(s.Ctx)
}

func (s *Scheduler) scanTask() {
	results := s.scan(s.Ctx)
	_, at := s.Board.Latest()
	s.trySend(notifier.FormatScan(results, at))
}

func (s *Scheduler) scan(ctx context.Context) []model.ScanResult {
	log.Info().Int("symbols", len(s.Symbols)).Msg("running scan")
	start := time.Now()
	results := s.Collector.AnalyzeAll(ctx, s.Symbols)
	at := time.Now()
	s.Board.Replace(results, at)
	metrics.RecordScan(at)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	log.Info().Int("symbols", len(results)).Int("failed", failed).Dur("took", at.Sub(start)).Msg("scan finished")
	return results
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return notifier.FormatHelp()
	}
	// strip a bot mention such as /scan@MyBot
	cmd, _, _ := strings.Cut(strings.ToLower(fields[0]), "@")

	switch cmd {
	case "/analyze":
		if len(fields) < 2 {
			return "Usage: /analyze SYMBOL"
		}
		symbol := s.resolveSymbol(fields[1])
		if symbol == "" {
			return fmt.Sprintf("Unknown symbol %s. Send /symbols for the list.", html.EscapeString(fields[1]))
		}
		a, err := s.Collector.Analyze(ctx, symbol)
		if err != nil {
			return fmt.Sprintf("❌ Analysis of %s failed: %s", html.EscapeString(symbol), html.EscapeString(err.Error()))
		}
		return notifier.FormatAnalysis(a)
	case "/scan":
		results := s.scan(ctx)
		_, at := s.Board.Latest()
		return notifier.FormatScan(results, at)
	case "/symbols":
		return notifier.FormatSymbols(s.Symbols)
	default:
		return notifier.FormatHelp()
	}
}

// resolveSymbol matches input case-insensitively against the universe,
// accepting the bare ticker without the exchange suffix.
func (s *Scheduler) resolveSymbol(input string) string {
	input = strings.ToUpper(input)
	for _, sym := range s.Symbols {
		upper := strings.ToUpper(sym)
		if upper == input {
			return sym
		}
		if base, _, ok := strings.Cut(upper, "."); ok && base == input {
			return sym
		}
	}
	return ""
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification failed")
	}
}
