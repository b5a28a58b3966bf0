package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Environment        string        `envconfig:"ENVIRONMENT"          default:"development"`
	Port               string        `envconfig:"PORT"                 default:"8080"`
	DatabaseDriver     string        `envconfig:"DATABASE_DRIVER"      default:"sqlite"`
	DatabaseURL        string        `envconfig:"DATABASE_URL"         default:"db.sqlite"`
	LogLevel           string        `envconfig:"LOG_LEVEL"`
	RateLimitRPS       int           `envconfig:"RATE_LIMIT_RPS"       default:"100"` // 0 disables the limiter
	CORSAllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT"     default:"10s"`
}

// Load reads the configuration from the process environment. A .env file,
// if any, must already have been loaded by the caller.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported DATABASE_DRIVER %q (want %s or %s)", c.DatabaseDriver, DriverSQLite, DriverPostgres)
	}

	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS cannot be negative")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
