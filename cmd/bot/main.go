package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"flyergen/internal/config"
	"flyergen/internal/handlers"
	"flyergen/internal/httpclient"
	"flyergen/internal/ratelimit"
	"flyergen/internal/session"
	"flyergen/internal/telegram"
	"flyergen/internal/textgroup"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadBot()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	httpClient := httpclient.New(httpclient.Options{
		PreferIPv4: cfg.PreferIPv4,
		Timeout:    cfg.HTTPTimeout,
	})

	tg, err := telegram.New(telegram.Options{
		Token:      cfg.TelegramToken,
		HTTPClient: httpClient,
		Logger:     logger,
		Debug:      cfg.Debug,
	})
	if err != nil {
		logger.Error("telegram init failed", "err", err)
		os.Exit(1)
	}
	if err := tg.SetCommands(handlers.Commands()); err != nil {
		logger.Warn("set commands failed", "err", err)
	}

	handler := handlers.New(handlers.Options{
		Telegram: tg,
		Sessions: session.NewStore(session.Options{
			TTL: cfg.SessionTTL,
		}),
		Limiter: ratelimit.New(ratelimit.Options{
			PerMinute: cfg.RateLimitPerMinute,
			Burst:     cfg.RateLimitBurst,
		}),
		Logger:        logger,
		MaxPhotoBytes: cfg.MaxPhotoBytes,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sem := make(chan struct{}, cfg.MaxConcurrent)
	onGroupFlush := func(group textgroup.Group) {
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			return
		}

		go func() {
			defer func() { <-sem }()

			reqCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
			defer cancel()

			handler.HandleTextGroup(reqCtx, group)
		}()
	}

	aggregator := textgroup.New(textgroup.Options{
		Debounce: cfg.TextGroupDebounce,
		OnFlush:  onGroupFlush,
	})
	handler.SetTextGroupAggregator(aggregator)

	logger.Info("bot started", "username", tg.Username())

	updates := tg.Updates(telegram.UpdatesOptions{
		Timeout: 30 * time.Second,
	})
	defer tg.StopUpdates()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return
		case update, ok := <-updates:
			if !ok {
				logger.Info("updates channel closed")
				return
			}

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}

			go func(update telegram.Update) {
				defer func() { <-sem }()

				reqCtx, cancel := context.WithTimeout(ctx, cfg.RequestTimeout)
				defer cancel()

				if err := handler.HandleUpdate(reqCtx, update); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("handle update failed", "err", err)
				}
			}(update)
		}
	}
}
