package db

import (
	"context"
	"testing"

	"github.com/angelmondragon/salesboard/pkg/config"
	"github.com/angelmondragon/salesboard/pkg/logger"
)

func newTestClient(t *testing.T, name string) *Client {
	t.Helper()
	client, err := New(context.Background(), config.DBConfig{
		Driver:       config.DriverSQLite,
		DSN:          "file:" + name + "?mode=memory&cache=shared",
		MaxOpenConns: 1,
	}, logger.Nop())
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestPing(t *testing.T) {
	client := newTestClient(t, "ping")
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("unexpected ping error: %v", err)
	}
}

func TestWithContextRunsQueries(t *testing.T) {
	client := newTestClient(t, "withcontext")
	ctx := context.Background()

	if err := client.WithContext(ctx).Exec("CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)").Error; err != nil {
		t.Fatalf("create table: %v", err)
	}
	if err := client.WithContext(ctx).Exec("INSERT INTO notes (body) VALUES (?)", "hello").Error; err != nil {
		t.Fatalf("insert: %v", err)
	}

	var count int64
	if err := client.DB().Table("notes").Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 row, got %d", count)
	}
}

func TestPingFailsAfterClose(t *testing.T) {
	client := newTestClient(t, "closed")
	if err := client.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if err := client.Ping(context.Background()); err == nil {
		t.Fatal("expected ping to fail on a closed pool")
	}
}

func TestNewRejectsMissingDSNAndUnknownDriver(t *testing.T) {
	if _, err := New(context.Background(), config.DBConfig{Driver: config.DriverSQLite}, nil); err == nil {
		t.Fatal("expected error without DSN")
	}
	if _, err := New(context.Background(), config.DBConfig{Driver: "oracle", DSN: "x"}, nil); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
