package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	DB       DBConfig
	Redis    RedisConfig
	Insights InsightsConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Storage.validate(); err != nil {
		return nil, err
	}
	if err := cfg.ensureBackend(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SALESBOARD_APP_ENV" default:"dev"`
	Port         string `envconfig:"SALESBOARD_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"SALESBOARD_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SALESBOARD_LOG_WARN_STACK" default:"false"`
	LogFormat    string `envconfig:"SALESBOARD_LOG_FORMAT" default:"json"`
	Timezone     string `envconfig:"SALESBOARD_TIMEZONE" default:"America/Sao_Paulo"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// Location resolves the configured timezone used to decide what "today" is.
// Unknown zones fall back to UTC.
func (a AppConfig) Location() *time.Location {
	name := strings.TrimSpace(a.Timezone)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

type StorageConfig struct {
	Backend string `envconfig:"SALESBOARD_STORAGE_BACKEND" default:"sqlite"`
}

func (s StorageConfig) normalized() string {
	kind := strings.ToLower(strings.TrimSpace(s.Backend))
	if kind == "" {
		return StorageSQLite
	}
	return kind
}

// Kind returns the normalized storage backend name.
func (s StorageConfig) Kind() string {
	return s.normalized()
}

func (s StorageConfig) validate() error {
	for _, candidate := range storageBackends {
		if candidate == s.normalized() {
			return nil
		}
	}
	return fmt.Errorf("%s must be one of %s", EnvStorageBackend, strings.Join(storageBackends, ", "))
}

type DBConfig struct {
	DSN    string `envconfig:"SALESBOARD_DB_DSN"`
	Driver string `envconfig:"SALESBOARD_DB_DRIVER"`

	// SkipMigrations leaves schema changes to cmd/migrate.
	SkipMigrations bool `envconfig:"SALESBOARD_DB_SKIP_MIGRATIONS" default:"false"`

	MaxOpenConns    int           `envconfig:"SALESBOARD_DB_MAX_OPEN_CONNS" default:"5"`
	MaxIdleConns    int           `envconfig:"SALESBOARD_DB_MAX_IDLE_CONNS" default:"2"`
	ConnMaxLifetime time.Duration `envconfig:"SALESBOARD_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"SALESBOARD_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"SALESBOARD_REDIS_URL"`
	Address      string        `envconfig:"SALESBOARD_REDIS_ADDR"`
	Password     string        `envconfig:"SALESBOARD_REDIS_PASSWORD"`
	DB           int           `envconfig:"SALESBOARD_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"SALESBOARD_REDIS_POOL_SIZE" default:"4"`
	MinIdleConns int           `envconfig:"SALESBOARD_REDIS_MIN_IDLE_CONNS" default:"1"`
	DialTimeout  time.Duration `envconfig:"SALESBOARD_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"SALESBOARD_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"SALESBOARD_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type InsightsConfig struct {
	APIKey      string        `envconfig:"SALESBOARD_INSIGHTS_API_KEY"`
	BaseURL     string        `envconfig:"SALESBOARD_INSIGHTS_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta/openai"`
	Model       string        `envconfig:"SALESBOARD_INSIGHTS_MODEL" default:"gemini-2.5-flash"`
	Temperature float32       `envconfig:"SALESBOARD_INSIGHTS_TEMPERATURE" default:"0.7"`
	MaxTokens   int           `envconfig:"SALESBOARD_INSIGHTS_MAX_TOKENS" default:"2000"`
	Timeout     time.Duration `envconfig:"SALESBOARD_INSIGHTS_TIMEOUT" default:"60s"`
	RateLimit   int           `envconfig:"SALESBOARD_INSIGHTS_RATE_LIMIT" default:"10"`
	RateWindow  time.Duration `envconfig:"SALESBOARD_INSIGHTS_RATE_WINDOW" default:"1m"`
}

// Enabled reports whether an API key was provided for the completion service.
func (i InsightsConfig) Enabled() bool {
	return strings.TrimSpace(i.APIKey) != ""
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SALESBOARD_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (c *Config) ensureBackend() error {
	switch c.Storage.Kind() {
	case StorageSQLite:
		if c.DB.Driver == "" {
			c.DB.Driver = DriverSQLite
		}
		if c.DB.DSN == "" {
			c.DB.DSN = defaultSQLiteDSN
		}
	case StoragePostgres:
		if c.DB.Driver == "" {
			c.DB.Driver = DriverPostgres
		}
		if c.DB.DSN == "" {
			return fmt.Errorf("%s is required for the postgres backend", EnvDBDSN)
		}
	case StorageRedis:
		if c.Redis.URL == "" && c.Redis.Address == "" {
			return fmt.Errorf("either %s or %s is required for the redis backend", EnvRedisURL, EnvRedisAddr)
		}
	}
	return nil
}
