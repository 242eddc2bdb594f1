package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(EnvStorageBackend, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.App.Port)
	}
	if cfg.Storage.Kind() != StorageSQLite {
		t.Fatalf("expected sqlite backend by default, got %q", cfg.Storage.Kind())
	}
	if cfg.DB.Driver != DriverSQLite {
		t.Fatalf("expected sqlite driver, got %q", cfg.DB.Driver)
	}
	if cfg.DB.DSN == "" {
		t.Fatal("expected default sqlite dsn")
	}
	if cfg.Insights.Timeout != 60*time.Second {
		t.Fatalf("expected 60s insights timeout, got %v", cfg.Insights.Timeout)
	}
	if cfg.Insights.Enabled() {
		t.Fatal("insights should be disabled without an api key")
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("expected two default origins, got %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_OverridesFromEnv(t *testing.T) {
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvStorageBackend, "memory")
	t.Setenv(EnvInsightsAPIKey, "key-123")
	t.Setenv(EnvInsightsModel, "gpt-4o-mini")
	t.Setenv(EnvCORSOrigins, "https://dash.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.App.Port != "9090" {
		t.Fatalf("expected port override, got %q", cfg.App.Port)
	}
	if cfg.Storage.Kind() != StorageMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Storage.Kind())
	}
	if !cfg.Insights.Enabled() || cfg.Insights.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected insights config %+v", cfg.Insights)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "https://dash.example.com" {
		t.Fatalf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoad_RejectsUnknownBackend(t *testing.T) {
	t.Setenv(EnvStorageBackend, "cassandra")

	if _, err := Load(); err == nil {
		t.Fatal("expected unknown backend to return an error")
	}
}

func TestLoad_PostgresRequiresDSN(t *testing.T) {
	t.Setenv(EnvStorageBackend, "postgres")
	t.Setenv(EnvDBDSN, "")

	if _, err := Load(); err == nil {
		t.Fatal("expected postgres backend without dsn to fail")
	}
}

func TestLoad_RedisRequiresAddress(t *testing.T) {
	t.Setenv(EnvStorageBackend, "redis")
	t.Setenv(EnvRedisURL, "")
	t.Setenv(EnvRedisAddr, "")

	if _, err := Load(); err == nil {
		t.Fatal("expected redis backend without address to fail")
	}

	t.Setenv(EnvRedisAddr, "localhost:6379")
	if _, err := Load(); err != nil {
		t.Fatalf("expected redis backend with address to load: %v", err)
	}
}

func TestAppLocationFallsBackToUTC(t *testing.T) {
	app := AppConfig{Timezone: "Mars/Olympus_Mons"}
	if app.Location() != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", app.Location())
	}
	if (AppConfig{}).Location() != time.UTC {
		t.Fatal("expected UTC for empty timezone")
	}
}
