package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"rutcheck/internal/platform/config"
	"rutcheck/internal/platform/httpserver"
	"rutcheck/internal/platform/logger"
	"rutcheck/internal/platform/metrics"
	httptransport "rutcheck/internal/transport/http"
	"rutcheck/internal/validation"
	validationHandler "rutcheck/internal/validation/handler"
	validationMetrics "rutcheck/internal/validation/metrics"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Identifier logic lives in pkg/rut.
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)

	svc, err := validation.New(cfg.Policy, log, validationMetrics.New(registry),
		validation.WithMaxBatchSize(cfg.MaxBatchSize))
	if err != nil {
		return fmt.Errorf("build validation service: %w", err)
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Metrics:  metrics.New(registry),
		Gatherer: registry,
		Modules:  []httptransport.Registrar{validationHandler.New(svc, log)},
	})
	srv := httpserver.New(cfg.Addr, router, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting rutcheck", "addr", cfg.Addr,
			"min_body", cfg.Policy.MinBody,
			"max_body", cfg.Policy.MaxBody,
			"org_threshold", cfg.Policy.OrganizationThreshold,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", "timeout", cfg.ShutdownTimeout.String())

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
