// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tracker's runtime settings.
type Config struct {
	// DBPath enables durable storage when set. Empty keeps saved shifts
	// in memory only.
	DBPath       string        `env:"DOCHAZKA_DB"`
	TickInterval time.Duration `env:"DOCHAZKA_TICK_INTERVAL" envDefault:"1s"`
	LogEvents    bool          `env:"DOCHAZKA_LOG_EVENTS" envDefault:"false"`
}

// Load reads Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("DOCHAZKA_TICK_INTERVAL must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}

// Durable reports whether saved shifts go to SQLite.
func (c Config) Durable() bool {
	return c.DBPath != ""
}
