package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/caarlos0/env/v6"
)

// EnvConfig defines fields used for parsing from environment variables
type EnvConfig struct {
	Host   string `env:"HOST" envDefault:"0.0.0.0"`
	Port   uint16 `env:"PORT" envDefault:"3000"`
	AppEnv string `env:"APP_ENV" envDefault:"development"`

	DBDriver  string `env:"DB_DRIVER" envDefault:"postgres"`
	DBURL     string `env:"DB_URL"`
	DBMigrate bool   `env:"DB_MIGRATE" envDefault:"true"`

	UsersFile string `env:"USERS_FILE" envDefault:"data/users.json"`

	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
}

// ParseEnv reads EnvConfig from the process environment
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env config: %w", err)
	}
	if cfg.DBURL == "" {
		return EnvConfig{}, fmt.Errorf("DB_URL is not set")
	}
	switch cfg.DBDriver {
	case DriverPostgres, DriverSQLite:
	default:
		return EnvConfig{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
	return cfg, nil
}

// Addr is the listen address of the HTTP server
func (c EnvConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.FormatUint(uint64(c.Port), 10))
}

func (c EnvConfig) Production() bool {
	return c.AppEnv == "production"
}
