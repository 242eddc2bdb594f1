package migrate

import (
	"context"
	"fmt"

	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/db"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

// Apply brings the schema up to date on boot unless the config opts out.
func Apply(ctx context.Context, cfg config.DBConfig, logg *logger.Logger, client *db.Client) error {
	if cfg.SkipMigrations {
		return nil
	}
	if client == nil {
		return fmt.Errorf("db client is required")
	}

	sqlDB, err := client.DB().DB()
	if err != nil {
		return fmt.Errorf("extracting sql.DB: %w", err)
	}

	applied, err := Up(ctx, sqlDB, cfg.Driver)
	if err != nil {
		return fmt.Errorf("running goose up: %w", err)
	}

	if logg != nil {
		ctx = logg.WithFields(ctx, map[string]any{"driver": cfg.Driver, "applied": applied})
		logg.Info(ctx, "goose migrations completed")
	}
	return nil
}
