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

	"github.com/google/uuid"

	"github.com/marcus-crane/steamr/config"
	"github.com/marcus-crane/steamr/db"
	"github.com/marcus-crane/steamr/events"
	"github.com/marcus-crane/steamr/jobs"
	"github.com/marcus-crane/steamr/migrations"
	"github.com/marcus-crane/steamr/notify"
	"github.com/marcus-crane/steamr/routes"
	"github.com/marcus-crane/steamr/steam"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.GetLogLevel(),
	})).With(slog.String("run_id", uuid.NewString())))

	store, err := db.NewSqliteStore(cfg.Steamr.DbPath)
	if err != nil {
		slog.Error("Failed to open database",
			slog.String("error", err.Error()),
			slog.String("path", cfg.Steamr.DbPath),
		)
		os.Exit(1)
	}

	if err := store.ApplyMigrations(migrations.GetMigrations()); err != nil {
		slog.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	client := steam.NewClient(cfg.Steam.Token)
	notifier := notify.NewPushover(cfg.Pushover.Token, cfg.Pushover.Recipient)

	events.Init()

	jobScheduler := jobs.SetupInBackground(cfg, client, store, notifier)

	if cfg.Steamr.BackgroundJobsEnabled {
		jobScheduler.StartAsync()
		slog.Info("Background jobs have started up in the background.")
	} else {
		slog.Info("Background jobs are disabled.")
	}

	router := routes.Register(http.NewServeMux(), cfg, client, store)

	srv := &http.Server{
		Addr:              cfg.Steamr.ListenAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down")
		jobScheduler.Stop()
		events.Server.Close()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("steamr is running", slog.String("addr", cfg.Steamr.ListenAddr))

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server stopped", slog.String("error", err.Error()))
		jobScheduler.Stop()
		os.Exit(1)
	}
}
