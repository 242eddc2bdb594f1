package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/angelmondragon/salesboard/internal/dashboard"
	"github.com/angelmondragon/salesboard/internal/storage"
	"github.com/angelmondragon/salesboard/internal/tables"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// seed overwrites the persisted tables with the fixed seed dataset.
func main() {
	logg := logger.New(logger.Options{ServiceName: "seed"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}
	logg = logger.New(logger.Options{
		ServiceName: "seed",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx := logg.WithField(context.Background(), "storage", cfg.Storage.Kind())
	if cfg.Storage.Kind() == config.StorageMemory {
		logg.Warn(ctx, "memory storage does not outlive this process, nothing to seed")
		return
	}

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(ctx, "seed failed", err)
		os.Exit(1)
	}
	logg.Info(ctx, "seed data written")
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) error {
	store, closeStore, err := storage.Open(ctx, cfg, logg)
	if err != nil {
		return fmt.Errorf("bootstrap storage: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logg.Error(ctx, "error closing storage", err)
		}
	}()

	svc, err := dashboard.NewService(ctx, tables.NewRepository(store, logg), dashboard.Options{
		Location: cfg.App.Location(),
		Logger:   logg,
	})
	if err != nil {
		return fmt.Errorf("dashboard service: %w", err)
	}
	if err := svc.Reset(ctx); err != nil {
		return fmt.Errorf("write seed data: %w", err)
	}
	return nil
}
