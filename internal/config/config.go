// Package config reads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds settings shared by every subcommand.
type Config struct {
	DataFile   string `env:"GILDEDROSE_DATA_FILE" envDefault:"inventory.json"`
	Theme      string `env:"GILDEDROSE_THEME" envDefault:"classic"`
	ForceColor bool   `env:"GILDEDROSE_FORCE_COLOR"`
	NoColor    bool   `env:"GILDEDROSE_NO_COLOR"`
	Verbose    bool   `env:"GILDEDROSE_VERBOSE"`
}

// Load parses Config from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
