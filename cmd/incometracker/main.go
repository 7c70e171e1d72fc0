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
	"golang.org/x/sync/errgroup"

	"github.com/dhar7/IncomeTracker/internal/config"
	"github.com/dhar7/IncomeTracker/internal/events"
	apphttp "github.com/dhar7/IncomeTracker/internal/http"
	"github.com/dhar7/IncomeTracker/internal/ledger"
	"github.com/dhar7/IncomeTracker/internal/log"
	"github.com/dhar7/IncomeTracker/internal/snapshot"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	log.Setup(cfg.LogLevel)

	store := ledger.New(snapshot.Load(cfg.DataFile))
	slog.Info("Ledger loaded", "path", cfg.DataFile)

	saver := snapshot.NewSaver(cfg.DataFile, store.Snapshot)
	store.OnChange(func(events.Event) { saver.Trigger() })

	// AMQP publishing is optional: a broker failure must never take the
	// ledger down with it.
	var pub *events.Publisher
	if cfg.AMQPURL != "" {
		var err error
		pub, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			slog.Warn("AMQP publisher unavailable, continuing without it", "error", err)
		} else {
			slog.Info("AMQP publisher initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
			store.OnChange(func(ev events.Event) {
				go func() {
					if err := pub.Publish(context.Background(), ev); err != nil {
						slog.Error("Event publish failed", "entity", ev.Entity, "op", ev.Op, "error", err)
					}
				}()
			})
		}
	}

	srv := apphttp.NewServer(cfg.Addr, store)
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Starting server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server error", "error", err)
	}

	// final flush happens inside Close, so nothing committed is lost
	saver.Close()
	if err := pub.Close(); err != nil {
		slog.Error("AMQP close failed", "error", err)
	}
	slog.Info("Server stopped gracefully")
}
