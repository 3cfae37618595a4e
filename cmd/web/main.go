package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"flyergen/internal/config"
	"flyergen/internal/httpapi"
	"flyergen/internal/ratelimit"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))

	api := httpapi.New(httpapi.Options{
		Logger: logger,
		Limiter: ratelimit.New(ratelimit.Options{
			PerMinute: cfg.RateLimitPerMinute,
			Burst:     cfg.RateLimitBurst,
		}),
		MaxBodyBytes:     cfg.MaxPhotoBytes * 2,
		BatchMaxItems:    cfg.BatchMaxItems,
		BatchConcurrency: cfg.BatchConcurrency,
	})

	srv := &http.Server{
		Addr:              cfg.WebAddr,
		Handler:           http.TimeoutHandler(api.Handler(), cfg.RequestTimeout, `{"error":"request timed out"}`),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 10*time.Second,
		IdleTimeout:       90 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("web started", "addr", cfg.WebAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}
}
