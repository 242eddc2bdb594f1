package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/db"
	"github.com/angelmondragon/salesboard/pkg/db/models"
	"github.com/angelmondragon/salesboard/pkg/logger"
	"github.com/angelmondragon/salesboard/pkg/migrate"
	pkgredis "github.com/angelmondragon/salesboard/pkg/redis"
)

func setupSQLStore(t *testing.T) (*SQLStore, *db.Client) {
	t.Helper()
	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}
	client, err := db.New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, migrate.Apply(context.Background(), cfg, logger.Nop(), client))

	store, err := NewSQLStore(client)
	require.NoError(t, err)
	return store, client
}

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client, err := pkgredis.New(context.Background(), config.RedisConfig{Address: server.Addr()}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewRedisStore(client)
	require.NoError(t, err)
	return store, server
}

func TestDocumentStores(t *testing.T) {
	backends := map[string]func(t *testing.T) DocumentStore{
		"sql": func(t *testing.T) DocumentStore {
			store, _ := setupSQLStore(t)
			return store
		},
		"redis": func(t *testing.T) DocumentStore {
			store, _ := setupRedisStore(t)
			return store
		},
		"memory": func(t *testing.T) DocumentStore {
			return NewMemoryStore()
		},
	}

	for name, build := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := build(t)

			require.NoError(t, store.Ping(ctx))

			_, err := store.Load(ctx, KeySales)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Save(ctx, KeySales, []byte(`[{"id":"101"}]`)))
			body, err := store.Load(ctx, KeySales)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"101"}]`, string(body))

			require.NoError(t, store.Save(ctx, KeySales, []byte(`[]`)))
			body, err = store.Load(ctx, KeySales)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(body))

			_, err = store.Load(ctx, KeyStores)
			assert.ErrorIs(t, err, ErrNotFound, "keys are independent")
		})
	}
}

func TestSQLStoreUpsertKeepsOneRow(t *testing.T) {
	ctx := context.Background()
	store, client := setupSQLStore(t)

	first := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	timeNowUTC = func() time.Time { return first }
	t.Cleanup(func() { timeNowUTC = func() time.Time { return time.Now().UTC() } })

	require.NoError(t, store.Save(ctx, KeyStores, []byte(`[1]`)))
	timeNowUTC = func() time.Time { return second }
	require.NoError(t, store.Save(ctx, KeyStores, []byte(`[2]`)))

	var docs []models.Document
	require.NoError(t, client.DB().Find(&docs).Error)
	require.Len(t, docs, 1)
	assert.Equal(t, KeyStores, docs[0].Name)
	assert.Equal(t, `[2]`, docs[0].Body)
	assert.True(t, docs[0].UpdatedAt.Equal(second))
}

func TestSQLStoreNeedsMigratedSchema(t *testing.T) {
	cfg := config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:unmigrated?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}
	client, err := db.New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store, err := NewSQLStore(client)
	require.NoError(t, err)
	assert.Error(t, store.Save(context.Background(), KeySales, []byte(`[]`)), "no documents table without migrations")
}

func TestRedisStoreUsesNamespacedKeysWithoutTTL(t *testing.T) {
	ctx := context.Background()
	store, server := setupRedisStore(t)

	require.NoError(t, store.Save(ctx, KeySalespeople, []byte(`[]`)))
	got, err := server.Get("sb:doc:staff_data")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
	assert.Zero(t, server.TTL("sb:doc:staff_data"))
}

func TestRedisStoreSurfacesConnectionErrors(t *testing.T) {
	ctx := context.Background()
	store, server := setupRedisStore(t)
	server.Close()

	_, err := store.Load(ctx, KeySales)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesBodies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	body := []byte(`[1]`)
	require.NoError(t, store.Save(ctx, KeySales, body))
	body[1] = '9'

	got, err := store.Load(ctx, KeySales)
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestConstructorsRequireDependencies(t *testing.T) {
	_, err := NewSQLStore(nil)
	assert.Error(t, err)
	_, err = NewRedisStore(nil)
	assert.Error(t, err)
}
