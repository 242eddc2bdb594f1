package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/angelmondragon/salesboard/api/routes"
	"github.com/angelmondragon/salesboard/internal/dashboard"
	"github.com/angelmondragon/salesboard/internal/insights"
	"github.com/angelmondragon/salesboard/internal/storage"
	"github.com/angelmondragon/salesboard/internal/tables"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/instance"
	"github.com/angelmondragon/salesboard/pkg/llm"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "api server stopped", err)
		stop()
		os.Exit(1)
	}
}

// run owns every resource opened after config load so deferred closes
// execute before main exits.
func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	store, closeStore, err := storage.Open(ctx, cfg, logg)
	if err != nil {
		return fmt.Errorf("bootstrap storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logg.Error(context.Background(), "error closing storage", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	dashboardService, err := dashboard.NewService(ctx, tables.NewRepository(store, logg), dashboard.Options{
		Location: cfg.App.Location(),
		Logger:   logg,
		Metrics:  metrics.NewDashboardMetrics(reg),
	})
	if err != nil {
		return fmt.Errorf("dashboard service: %w", err)
	}

	var generator insights.Generator
	if cfg.Insights.Enabled() {
		client, err := llm.NewFromConfig(cfg.Insights)
		if err != nil {
			return fmt.Errorf("completion client: %w", err)
		}
		generator = insights.NewLLMGenerator(client)
		logg.Info(logg.WithField(ctx, "model", client.Model()), "insights enabled")
	} else {
		logg.Warn(ctx, "insights api key not set, insight requests will return the fallback")
	}

	insightService, err := insights.NewService(generator, logg, metrics.NewInsightMetrics(reg))
	if err != nil {
		return fmt.Errorf("insight service: %w", err)
	}

	addr := ":" + cfg.App.Port
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"storage":  cfg.Storage.Kind(),
		"instance": instance.GetID(),
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, reg, dashboardService, insightService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info(serverCtx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("api server stopped unexpectedly: %w", err)
		}
	case <-ctx.Done():
		logg.Info(serverCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(serverCtx, "graceful shutdown failed", err)
		}
	}
	return nil
}
