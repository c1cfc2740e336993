// Package config loads editor configuration from a YAML file and
// environment variables.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the root configuration structure
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Editor EditorConfig `mapstructure:"editor"`
	Log    LogConfig    `mapstructure:"log"`
	Debug  bool         `mapstructure:"debug"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	LineNumbers bool   `mapstructure:"line_numbers"`
	Theme       string `mapstructure:"theme"`
}

// EditorConfig holds editing behavior settings
type EditorConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

// LogConfig holds log file settings
type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// Load reads configuration from $HOME/.config/vellum/config.yaml and the
// VELLUM_* environment, falling back to defaults when no file exists.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/vellum")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvPrefix("VELLUM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := Validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate validates the configuration values
func Validate(cfg *Config) error {
	validThemes := []string{"dark", "light", "plain"}
	validTheme := false
	for _, theme := range validThemes {
		if cfg.UI.Theme == theme {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("ui.theme must be one of: %v, got %s", validThemes, cfg.UI.Theme)
	}

	if cfg.Editor.HistoryLimit < 1 {
		return fmt.Errorf("editor.history_limit must be >= 1, got %d", cfg.Editor.HistoryLimit)
	}

	if cfg.Log.MaxSizeMB < 1 {
		return fmt.Errorf("log.max_size_mb must be >= 1, got %d", cfg.Log.MaxSizeMB)
	}
	if cfg.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must be >= 0, got %d", cfg.Log.MaxBackups)
	}
	return nil
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	v.SetDefault("ui.line_numbers", false)
	v.SetDefault("ui.theme", "dark")

	v.SetDefault("editor.history_limit", 1000)

	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 2)

	v.SetDefault("debug", false)
}
