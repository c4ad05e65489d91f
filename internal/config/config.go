// Package config loads scorebuddies settings from the environment.
package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"golang.org/x/text/language"

	"scorebuddies/internal/kv"
)

const (
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

// Config holds every environment-driven setting.
type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	BaseURL   string `env:"BASE_URL"`
	Store     string `env:"SCOREBUDDIES_STORE" envDefault:"sqlite"`
	DBPath    string `env:"SCOREBUDDIES_DB" envDefault:"scorebuddies.db"`
	Key       string `env:"SCOREBUDDIES_KEY" envDefault:"scorebuddies-game"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
	Lang      string `env:"SCOREBUDDIES_LANG" envDefault:"en"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Port = strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.Store = strings.ToLower(strings.TrimSpace(c.Store))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.Key = strings.TrimSpace(c.Key)
	c.Lang = strings.TrimSpace(c.Lang)
}

// Validate rejects settings the binaries cannot run with.
func (c Config) Validate() error {
	switch c.Store {
	case StoreSQLite:
		if strings.TrimSpace(c.DBPath) == "" {
			return fmt.Errorf("SCOREBUDDIES_DB is required for the sqlite store")
		}
	case StoreMemory:
	default:
		return fmt.Errorf("unknown store %q (want %s or %s)", c.Store, StoreSQLite, StoreMemory)
	}
	if c.Key == "" {
		return fmt.Errorf("SCOREBUDDIES_KEY must not be empty")
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if _, err := language.Parse(c.Lang); err != nil {
		return fmt.Errorf("SCOREBUDDIES_LANG: %w", err)
	}
	return nil
}

// Language is the tag used to order player names. Invalid values fall back
// to English; Load has already rejected them.
func (c Config) Language() language.Tag {
	tag, err := language.Parse(c.Lang)
	if err != nil {
		return language.English
	}
	return tag
}

// Addr is the listen address for the web server.
func (c Config) Addr() string {
	if c.Port == "" {
		return ":8080"
	}
	return ":" + c.Port
}

// OpenStore opens the configured snapshot store.
func OpenStore(ctx context.Context, c Config) (kv.Store, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	switch c.Store {
	case StoreMemory:
		return kv.NewMemory(), nil
	case StoreSQLite:
		store, err := kv.OpenSQLite(c.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store %q", c.Store)
	}
}
