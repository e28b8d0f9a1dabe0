package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// config holds the settings that can be given in a TOML file. Flags given on
// the command line take precedence.
type config struct {
	// Precision is the number of decimal digits to round to. Negative
	// values disable rounding.
	Precision int    `toml:"precision"`
	Normalize bool   `toml:"normalize"`
	Output    string `toml:"output"`
}

func defaultConfig() config {
	return config{
		Precision: -1,
		Output:    "text",
	}
}

// loadConfig reads the TOML file at path on top of cfg.
func loadConfig(path string, cfg config) (config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
