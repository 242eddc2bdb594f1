package config

const EnvPrefix = "SALESBOARD"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv         = "SALESBOARD_APP_ENV"
	EnvPort           = "SALESBOARD_APP_PORT"
	EnvLogLevel       = "SALESBOARD_LOG_LEVEL"
	EnvTimezone       = "SALESBOARD_TIMEZONE"
	EnvStorageBackend = "SALESBOARD_STORAGE_BACKEND"
	EnvDBDSN          = "SALESBOARD_DB_DSN"
	EnvDBDriver       = "SALESBOARD_DB_DRIVER"
	EnvRedisURL       = "SALESBOARD_REDIS_URL"
	EnvRedisAddr      = "SALESBOARD_REDIS_ADDR"
	EnvInsightsAPIKey = "SALESBOARD_INSIGHTS_API_KEY"
	EnvInsightsModel  = "SALESBOARD_INSIGHTS_MODEL"
	EnvCORSOrigins    = "SALESBOARD_CORS_ALLOWED_ORIGINS"
)

const (
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
	StorageMemory   = "memory"
)

var storageBackends = []string{StorageSQLite, StoragePostgres, StorageRedis, StorageMemory}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const defaultSQLiteDSN = "file:salesboard.db?_foreign_keys=on"
