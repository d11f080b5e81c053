package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"IntradayScope/internal/app"
	"IntradayScope/internal/notifier"
	"IntradayScope/internal/scheduler"
	"IntradayScope/internal/web"
)

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
	app.SetupLogger(cfg.Log.Level, cfg.Log.Pretty)
	log.Info().Int("symbols", len(cfg.Symbols)).Msg("IntradayScope starting")

	col, closeCache, err := app.NewCollector(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("init collector")
	}
	defer closeCache()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	board := scheduler.NewBoard()
	var sender scheduler.Sender
	var tn *notifier.TelegramNotifier
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		sender = tn
	}

	sched := scheduler.NewScheduler(ctx, col, board, cfg.Symbols, sender)
	if err := sched.Register(cfg.Scan.Cron); err != nil {
		log.Fatal().Err(err).Msg("register cron tasks")
	}
	sched.Start()
	defer sched.Stop()

	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info().Msg("telegram polling started")
	}

	if os.Getenv("RUN_ON_START") == "true" {
		log.Info().Msg("RUN_ON_START enabled, scanning now")
		go sched.RunScanNow()
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           web.NewRouter(web.NewHandler(col, sched, board, cfg.Symbols)),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info().Msg("shutdown signal received, stopping")
	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	cancel()
	log.Info().Msg("IntradayScope stopped")
}
