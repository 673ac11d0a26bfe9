package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"medication-tracker/internal/adapters/render"
	"medication-tracker/internal/domain/doses"
	"medication-tracker/internal/metrics"
	"medication-tracker/internal/platform/config"
	"medication-tracker/internal/platform/logger"
	"medication-tracker/internal/router"
	"medication-tracker/internal/scheduler"
)

// @title Medication Tracker API
// @version 1.0
// @description Registro de tomas de Paracetamol e Ibuprofeno y tiempo transcurrido desde la última.
// @BasePath /
func main() {
	cfg, dotenv, err := config.Load()
	if err != nil {
		logger.New(logger.Options{Level: logger.Error}).Error("invalid config", map[string]any{"error": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	if !dotenv {
		log.Debug("no .env file found, using environment variables", nil)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	store, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	m := metrics.New(prometheus.DefaultRegisterer)
	clock := clockwork.NewRealClock()

	tracker := doses.NewService(doses.NewKVPersistence(store, log, m), doses.Options{
		Clock:    clock,
		Renderer: render.NewLogRenderer(log),
		Location: cfg.Location(),
		Logger:   log,
		Metrics:  m,
	})
	tracker.Initialize(ctx)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router.NewRouter(router.Options{Tracker: tracker}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return scheduler.New(tracker, clock, cfg.TickPeriod, log).Run(ctx)
	})

	g.Go(func() error {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
