// Package config loads kitmap settings from the user's config file and
// KITMAP_ environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/twilightdev/kitmap/internal/storage"
)

// Config holds all runtime settings.
type Config struct {
	// DatabasePath is where recorded data lives.
	DatabasePath string

	// ServerPort is the web preview port.
	ServerPort int

	// SampleInterval is how often the listener flushes a typing-speed
	// sample.
	SampleInterval time.Duration
}

// Load reads config.yaml from the user config directory (if present),
// applies KITMAP_ environment overrides, and fills defaults for the rest.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "kitmap"))
	}

	v.SetEnvPrefix("KITMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaultDB, err := storage.DefaultPath()
	if err != nil {
		return nil, err
	}
	v.SetDefault("database.path", defaultDB)
	v.SetDefault("server.port", 3456)
	v.SetDefault("listen.sample_interval", "10s")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; a malformed one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	interval := v.GetDuration("listen.sample_interval")
	if interval <= 0 {
		return nil, fmt.Errorf("listen.sample_interval must be positive, got %q", v.GetString("listen.sample_interval"))
	}

	return &Config{
		DatabasePath:   v.GetString("database.path"),
		ServerPort:     v.GetInt("server.port"),
		SampleInterval: interval,
	}, nil
}
