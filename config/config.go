package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// ListenPort is fixed; the frontend is built against it.
const ListenPort = "3000"

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config holds runtime configuration read from the environment.
type Config struct {
	AppEnv          string        `envconfig:"APP_ENV" default:"development"`
	DBDriver        string        `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath          string        `envconfig:"DB_PATH" default:"tailor_shop.db"`
	MySQLDSN        string        `envconfig:"MYSQL_DSN"`
	GinMode         string        `envconfig:"GIN_MODE" default:"debug"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	CORSOrigin      string        `envconfig:"CORS_ORIGIN" default:"*"`
	RateLimit       int           `envconfig:"RATE_LIMIT" default:"50"`
	RateWindow      time.Duration `envconfig:"RATE_WINDOW" default:"1s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadDotEnv reads .env into the process environment. A missing file is
// reported to the caller but is not fatal.
func LoadDotEnv(filenames ...string) error {
	return godotenv.Load(filenames...)
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
