// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"stockscout/internal/errors"
	"stockscout/internal/logging"
)

// Config holds all application configuration.
type Config struct {
	Provider  ProviderConfig  `mapstructure:"provider"`
	Watchlist WatchlistConfig `mapstructure:"watchlist"`
	Search    SearchConfig    `mapstructure:"search"`
	Log       LogFileConfig   `mapstructure:"log"`
}

// ProviderConfig holds market data provider configuration.
type ProviderConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// WatchlistConfig holds watchlist persistence configuration.
type WatchlistConfig struct {
	Path string `mapstructure:"path"`
}

// SearchConfig holds ticker search configuration.
type SearchConfig struct {
	DebounceMillis int `mapstructure:"debounce_millis"`
}

// LogFileConfig holds logging configuration.
type LogFileConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/stockscout"
	}
	return filepath.Join(home, ".config", "stockscout")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	logDefaults := logging.DefaultLogConfig()
	v.SetDefault("provider.base_url", "https://api.polygon.io")
	v.SetDefault("provider.timeout", 30*time.Second)
	v.SetDefault("watchlist.path", filepath.Join(configDir, "stocks.json"))
	v.SetDefault("search.debounce_millis", 500)
	v.SetDefault("log.level", logDefaults.Level)
	v.SetDefault("log.console", logDefaults.Console)
	v.SetDefault("log.file", logDefaults.File)
	v.SetDefault("log.file_path", logDefaults.FilePath)
	v.SetDefault("log.max_size", logDefaults.MaxSize)
	v.SetDefault("log.max_backups", logDefaults.MaxBackups)
	v.SetDefault("log.max_age", logDefaults.MaxAge)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return nil, err
			}
		} else {
			return nil, fmt.Errorf("reading config.yaml: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	applyEnvOverrides(cfg)

	// The starter template ships empty paths meaning "use the config dir".
	// An explicit empty file value overrides the viper default, so fill it
	// back in before validating.
	if cfg.Watchlist.Path == "" {
		cfg.Watchlist.Path = filepath.Join(configDir, "stocks.json")
	}
	if cfg.Log.FilePath == "" {
		cfg.Log.FilePath = logDefaults.FilePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("POLYGON_API_KEY"); v != "" {
		cfg.Provider.APIKey = v
	}
	if v := os.Getenv("STOCKSCOUT_WATCHLIST"); v != "" {
		cfg.Watchlist.Path = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "provider.base_url must not be empty")
	}
	if c.Provider.Timeout <= 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "provider.timeout must be positive")
	}
	if c.Watchlist.Path == "" {
		return errors.Wrap(errors.ErrConfigInvalid, "watchlist.path must not be empty")
	}
	if c.Search.DebounceMillis < 0 {
		return errors.Wrap(errors.ErrConfigInvalid, "search.debounce_millis must not be negative")
	}
	return nil
}

// Debounce returns the search debounce window as a duration.
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.Search.DebounceMillis) * time.Millisecond
}

// LogConfig converts the file configuration into logging.LogConfig.
func (c *Config) LogConfig() logging.LogConfig {
	return logging.LogConfig{
		Level:      c.Log.Level,
		Console:    c.Log.Console,
		File:       c.Log.File,
		FilePath:   c.Log.FilePath,
		MaxSize:    c.Log.MaxSize,
		MaxBackups: c.Log.MaxBackups,
		MaxAge:     c.Log.MaxAge,
	}
}
