package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lotto-gate/internal/config"
	"lotto-gate/internal/database"
	"lotto-gate/internal/handler"
	"lotto-gate/internal/lotto"
	"lotto-gate/internal/metrics"
	"lotto-gate/internal/repository"
	"lotto-gate/internal/router"
	"lotto-gate/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting lotto-gate API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to initialize database schema: %w", err)
	}

	// Metrics are optional; the service falls back to a no-op recorder.
	recorder := metrics.NewNopRecorder()
	var routerOpts router.Options
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		recorder, err = metrics.NewPrometheusRecorder(reg)
		if err != nil {
			return fmt.Errorf("failed to initialize metrics: %w", err)
		}

		routerOpts = router.Options{
			MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			MetricsPath:    cfg.Metrics.Path,
		}
		logger.Info().Str("path", cfg.Metrics.Path).Msg("metrics enabled")
	}

	drawRepo := repository.NewDrawRepository(pool, logger)
	lottoService := service.NewLottoService(drawRepo, lotto.NewParser(), recorder, logger)

	validationHandler := handler.NewValidationHandler(lottoService, logger)
	drawHandler := handler.NewDrawHandler(lottoService, logger)

	mux := router.New(validationHandler, drawHandler, cfg.Auth.APIKey, logger, routerOpts)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
