package web

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls the web server.
type Config struct {
	Port       int           `env:"SF_PORT"        envDefault:"8080"`
	DevMode    bool          `env:"SF_DEV_MODE"`
	Catalog    string        `env:"SF_CATALOG"`
	SessionTTL time.Duration `env:"SF_SESSION_TTL" envDefault:"24h"`
}

// LoadConfigFromEnv reads server configuration from the environment.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SF_SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}
