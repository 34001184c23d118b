package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds CLI defaults resolved from the config file and environment.
// Command-line flags override everything here at the command layer.
type Config struct {
	// Winners is the default top-N reported by draw
	Winners int `mapstructure:"winners"`

	// Format is the default output format: "text" or "json"
	Format string `mapstructure:"format"`

	// RecordDir, when set, is where draw records are written by default
	RecordDir string `mapstructure:"record_dir"`
}

// Load resolves configuration with the precedence: built-in defaults, then
// an optional opendraw.yaml (current directory or $HOME/.opendraw), then
// OPENDRAW_* environment variables. A missing config file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("winners", 3)
	v.SetDefault("format", "text")
	v.SetDefault("record_dir", "")

	v.SetConfigName("opendraw")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".opendraw"))
	}

	v.SetEnvPrefix("OPENDRAW")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Winners <= 0 {
		return nil, fmt.Errorf("config winners must be positive, got %d", cfg.Winners)
	}
	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("config format must be \"text\" or \"json\", got %q", cfg.Format)
	}
	return &cfg, nil
}
