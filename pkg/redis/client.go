// Package redis keeps whole JSON documents under namespaced keys.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

const (
	keyNamespace   = "sb"
	documentPrefix = "doc"
)

var errNotInitialized = errors.New("redis client not initialized")

// commands is the slice of go-redis the document store needs.
type commands interface {
	Ping(ctx context.Context) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

type Client struct {
	cmds commands
	raw  *redis.Client
}

// New dials Redis and fails unless the first PING succeeds.
func New(ctx context.Context, cfg config.RedisConfig, logg *logger.Logger) (*Client, error) {
	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	raw := redis.NewClient(opts)
	if err := raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	if logg != nil {
		logg.Info(logg.WithFields(ctx, map[string]any{"addr": opts.Addr, "db": opts.DB}), "redis connection established")
	}
	return &Client{cmds: raw, raw: raw}, nil
}

// optionsFromConfig prefers SALESBOARD_REDIS_URL. Values the URL leaves
// unset are taken from the remaining settings.
func optionsFromConfig(cfg config.RedisConfig) (*redis.Options, error) {
	opts := &redis.Options{Addr: cfg.Address, Password: cfg.Password, DB: cfg.DB}
	switch {
	case cfg.URL != "":
		parsed, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("parsing redis url: %w", err)
		}
		opts = parsed
		if opts.DB == 0 {
			opts.DB = cfg.DB
		}
	case cfg.Address == "":
		return nil, errors.New("redis url or address is required")
	}

	opts.PoolSize = orDefault(opts.PoolSize, cfg.PoolSize)
	opts.MinIdleConns = orDefault(opts.MinIdleConns, cfg.MinIdleConns)
	opts.DialTimeout = orDefault(opts.DialTimeout, cfg.DialTimeout)
	opts.ReadTimeout = orDefault(opts.ReadTimeout, cfg.ReadTimeout)
	opts.WriteTimeout = orDefault(opts.WriteTimeout, cfg.WriteTimeout)
	return opts, nil
}

func orDefault[T comparable](current, fallback T) T {
	var zero T
	if current == zero {
		return fallback
	}
	return current
}

// LoadDocument returns the body stored for name. A missing document is
// reported with an error IsMissing recognises.
func (c *Client) LoadDocument(ctx context.Context, name string) ([]byte, error) {
	if c == nil || c.cmds == nil {
		return nil, errNotInitialized
	}
	body, err := c.cmds.Get(ctx, DocumentKey(name)).Bytes()
	if err != nil {
		return nil, err
	}
	return body, nil
}

// SaveDocument replaces the body stored for name. Documents never expire.
func (c *Client) SaveDocument(ctx context.Context, name string, body []byte) error {
	if c == nil || c.cmds == nil {
		return errNotInitialized
	}
	return c.cmds.Set(ctx, DocumentKey(name), body, 0).Err()
}

func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.cmds == nil {
		return errNotInitialized
	}
	return c.cmds.Ping(ctx).Err()
}

func (c *Client) Close() error {
	if c == nil || c.raw == nil {
		return nil
	}
	return c.raw.Close()
}

// DocumentKey returns sb:doc:<name>.
func DocumentKey(name string) string {
	parts := []string{keyNamespace, documentPrefix}
	if name = strings.TrimSpace(name); name != "" {
		parts = append(parts, name)
	}
	return strings.Join(parts, ":")
}

// IsMissing reports whether err means the key does not exist.
func IsMissing(err error) bool {
	return errors.Is(err, redis.Nil)
}
