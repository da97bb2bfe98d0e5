package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Store    StoreConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Sim      SimConfig
	Checkout CheckoutConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Store.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TECHMART_APP_ENV" default:"dev"`
	Port         string `envconfig:"TECHMART_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TECHMART_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TECHMART_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StoreConfig selects where application-state snapshots are written.
type StoreConfig struct {
	Backend     string `envconfig:"TECHMART_STORE_BACKEND" default:"sqlite"`
	SnapshotKey string `envconfig:"TECHMART_STORE_SNAPSHOT_KEY" default:"appState"`
	AutoMigrate bool   `envconfig:"TECHMART_AUTO_MIGRATE" default:"true"`
}

func (s StoreConfig) validate() error {
	switch s.Backend {
	case StoreBackendSQLite, StoreBackendRedis, StoreBackendMemory:
		return nil
	}
	return fmt.Errorf("unknown store backend %q", s.Backend)
}

type DBConfig struct {
	Path            string        `envconfig:"TECHMART_DB_PATH" default:"techmart.db"`
	MaxOpenConns    int           `envconfig:"TECHMART_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"TECHMART_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"TECHMART_DB_CONN_MAX_LIFETIME" default:"1h"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TECHMART_REDIS_URL"`
	Address      string        `envconfig:"TECHMART_REDIS_ADDR"`
	Password     string        `envconfig:"TECHMART_REDIS_PASSWORD"`
	DB           int           `envconfig:"TECHMART_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TECHMART_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TECHMART_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TECHMART_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TECHMART_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TECHMART_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TECHMART_JWT_SECRET" default:"techmart-dev-secret"`
	Issuer            string `envconfig:"TECHMART_JWT_ISSUER" default:"techmart"`
	ExpirationMinutes int    `envconfig:"TECHMART_JWT_EXPIRATION_MINUTES" default:"1440"`
}

// SimConfig holds the artificial latencies that stand in for real network
// calls. They are configurable so tests can run without sleeping.
type SimConfig struct {
	AuthDelay    time.Duration `envconfig:"TECHMART_SIM_AUTH_DELAY" default:"1s"`
	PaymentDelay time.Duration `envconfig:"TECHMART_SIM_PAYMENT_DELAY" default:"3s"`
}

type CheckoutConfig struct {
	TaxRate float64 `envconfig:"TECHMART_CHECKOUT_TAX_RATE" default:"0.08"`
}
