package shared

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string `env:"APP_ENV" envDefault:"prod"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr    string `env:"HTTP_ADDR" envDefault:":8080"`
	MetricsAddr string `env:"METRICS_ADDR" envDefault:":9090"`

	MySQLDSN          string        `env:"MYSQL_DSN" envDefault:"root:root@tcp(localhost:3306)/hotels?parseTime=true&charset=utf8mb4,utf8&loc=UTC"`
	MySQLMaxOpenConns int           `env:"MYSQL_MAX_OPEN_CONNS" envDefault:"25"`
	MySQLMaxIdleConns int           `env:"MYSQL_MAX_IDLE_CONNS" envDefault:"25"`
	MySQLConnMaxLife  time.Duration `env:"MYSQL_CONN_MAX_LIFETIME" envDefault:"30m"`
	RunMigrations     bool          `env:"RUN_MIGRATIONS" envDefault:"false"`

	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`
	// CacheTTLSeconds > 0 turns on hotel catalog caching. Off by default so
	// reads always reflect the database.
	CacheTTLSeconds int `env:"CACHE_TTL_SECONDS" envDefault:"0"`

	JWTSecret      string        `env:"JWT_SECRET"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	CatalogBase   string  `env:"CATALOG_BASE_URL" envDefault:"http://localhost:9000/v1"`
	CatalogKey    string  `env:"CATALOG_API_KEY"`
	CatalogRPS    int     `env:"CATALOG_RPS" envDefault:"5"`
	IngestWorkers int     `env:"INGEST_WORKERS" envDefault:"8"`
	IngestIDs     []int64 `env:"INGEST_HOTEL_IDS" envSeparator:","`
}

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required")

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env config: %w", err)
	}
	if c.CacheTTLSeconds < 0 {
		c.CacheTTLSeconds = 0
	}
	return c, nil
}

// ValidateAPI checks the settings the HTTP API cannot start without.
func (c Config) ValidateAPI() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
