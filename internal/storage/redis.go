package storage

import (
	"context"
	"fmt"

	pkgredis "github.com/angelmondragon/salesboard/pkg/redis"
)

// RedisStore keeps each document under its own namespaced key with no TTL.
type RedisStore struct {
	client *pkgredis.Client
}

func NewRedisStore(client *pkgredis.Client) (*RedisStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client is required")
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, error) {
	body, err := s.client.LoadDocument(ctx, key)
	if pkgredis.IsMissing(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading document %s: %w", key, err)
	}
	return body, nil
}

func (s *RedisStore) Save(ctx context.Context, key string, body []byte) error {
	if err := s.client.SaveDocument(ctx, key, body); err != nil {
		return fmt.Errorf("saving document %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}
