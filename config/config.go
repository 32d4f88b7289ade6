// Package config loads the server configuration from an optional YAML
// file. A missing file is not an error; defaults apply, and flags at
// the entry point may override whatever was loaded.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           int      `yaml:"Port"`
	AllowedOrigins []string `yaml:"AllowedOrigins"`

	// ParseMode is the default duration parse mode for /api/summarize:
	// "lenient" (default) or "strict".
	ParseMode string `yaml:"ParseMode"`
}

// Load reads the config at path. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	// Apply defaults for missing values
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.ParseMode == "" {
		cfg.ParseMode = "lenient"
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Port: 8080,
		AllowedOrigins: []string{
			"http://localhost:5173",
			"http://localhost:8080",
		},
		ParseMode: "lenient",
	}
}
