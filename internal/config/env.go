// Package config reads avatarhash settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	// Schema is the fingerprint schema version used when none is given.
	Schema int `env:"AVATARHASH_SCHEMA" envDefault:"2"`
	// DB is the path of the SQLite registry.
	DB string `env:"AVATARHASH_DB"`
	// Names is the path of a JSON name asset.
	Names string `env:"AVATARHASH_NAMES"`
	// Format is the default output format, "text" or "json".
	Format string `env:"AVATARHASH_FORMAT" envDefault:"text"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns the configuration from the current environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	switch cfg.Format {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("AVATARHASH_FORMAT: unsupported format %q", cfg.Format)
	}
	return cfg, nil
}
