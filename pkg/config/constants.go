package config

// EnvPrefix is passed to envconfig; the explicit envconfig tags on every
// field already carry it, so this only matters for untagged additions.
const EnvPrefix = "TECHMART"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

// Snapshot store backends.
const (
	StoreBackendSQLite = "sqlite"
	StoreBackendRedis  = "redis"
	StoreBackendMemory = "memory"
)
