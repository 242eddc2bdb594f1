package storage

import (
	"context"
	"fmt"

	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/db"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/migrate"
	pkgredis "github.com/angelmondragon/salesboard/pkg/redis"
)

// Open builds the document store selected by cfg.Storage. The returned
// close func releases the underlying connection and is never nil.
func Open(ctx context.Context, cfg *config.Config, logg *logger.Logger) (DocumentStore, func() error, error) {
	noop := func() error { return nil }
	if cfg == nil {
		return nil, noop, fmt.Errorf("config is required")
	}

	switch kind := cfg.Storage.Kind(); kind {
	case config.StorageMemory:
		return NewMemoryStore(), noop, nil

	case config.StorageSQLite, config.StoragePostgres:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			return nil, noop, fmt.Errorf("bootstrap %s: %w", kind, err)
		}
		if err := migrate.Apply(ctx, cfg.DB, logg, client); err != nil {
			_ = client.Close()
			return nil, noop, fmt.Errorf("migrate %s: %w", kind, err)
		}
		store, err := NewSQLStore(client)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return store, client.Close, nil

	case config.StorageRedis:
		client, err := pkgredis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, noop, fmt.Errorf("bootstrap redis: %w", err)
		}
		store, err := NewRedisStore(client)
		if err != nil {
			_ = client.Close()
			return nil, noop, err
		}
		return store, client.Close, nil

	default:
		return nil, noop, fmt.Errorf("unsupported storage backend %q", kind)
	}
}
