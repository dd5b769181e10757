// Package config reads process configuration from the environment.
package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/tempestweather/tempest-core/internal/log"
)

// Config holds process-level configuration.
type Config struct {
	// DataDir is where the durable state database lives.
	DataDir string

	// WidgetSlotDir is the shared container directory for the widget
	// handoff. Empty means this host has no shared surface.
	WidgetSlotDir string

	// Debug enables development logging.
	Debug bool
}

// Load reads configuration from the environment, with an optional .env
// file, applying defaults where unset.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	cfg := &Config{
		DataDir:       getenvDefault("TEMPEST_DATA_DIR", defaultDataDir()),
		WidgetSlotDir: os.Getenv("TEMPEST_WIDGET_DIR"),
		Debug:         os.Getenv("TEMPEST_DEBUG") != "",
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StatePath returns the path of the durable state database.
func (c *Config) StatePath() string {
	return filepath.Join(c.DataDir, "state.db")
}

func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "tempest-core")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
