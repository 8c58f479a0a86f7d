// Package config provides configuration management for the application. It
// handles loading, validation, and access to configuration values from YAML
// files and environment variables via viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/jonesrussell/ozstats/internal/fetcher"
	"github.com/jonesrussell/ozstats/internal/generator"
	"github.com/jonesrussell/ozstats/internal/logger"
	"github.com/jonesrussell/ozstats/internal/storage"
)

// AppConfig represents application-level settings.
type AppConfig struct {
	// Name is the application name.
	Name string `yaml:"name" mapstructure:"name"`
	// Environment is the application environment (development, production).
	Environment string `yaml:"environment" mapstructure:"environment"`
	// Debug enables debug logging.
	Debug bool `yaml:"debug" mapstructure:"debug"`
}

// Validate checks the application settings.
func (c *AppConfig) Validate() error {
	switch c.Environment {
	case "development", "production":
		return nil
	default:
		return fmt.Errorf("invalid environment: %s", c.Environment)
	}
}

// OutputConfig represents report output settings.
type OutputConfig struct {
	// File is the report file path.
	File string `yaml:"file" mapstructure:"file"`
}

// Validate checks the output settings.
func (c *OutputConfig) Validate() error {
	if c.File == "" {
		return errors.New("output file must be specified")
	}
	return nil
}

// Config represents the application configuration.
type Config struct {
	// App holds application-level settings.
	App AppConfig `yaml:"app" mapstructure:"app"`
	// Logger holds logging settings.
	Logger logger.Config `yaml:"logger" mapstructure:"logger"`
	// Fetcher holds page download and cache settings.
	Fetcher fetcher.Config `yaml:"fetcher" mapstructure:"fetcher"`
	// Generator holds the row generator weighting.
	Generator generator.Weights `yaml:"generator" mapstructure:"generator"`
	// Storage holds the run history settings. An empty path disables run
	// history.
	Storage storage.Config `yaml:"storage" mapstructure:"storage"`
	// Output holds report output settings.
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	// GamesFile is the games YAML file holding scrape profiles.
	GamesFile string `yaml:"games_file" mapstructure:"games_file"`
	// DefaultGame is the profile used when no --game flag is given.
	DefaultGame string `yaml:"default_game" mapstructure:"default_game"`
}

// HistoryEnabled reports whether run history is configured.
func (c *Config) HistoryEnabled() bool {
	return c.Storage.Path != ""
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	if err := c.Fetcher.Validate(); err != nil {
		return fmt.Errorf("fetcher: %w", err)
	}
	if err := c.Generator.Validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if c.HistoryEnabled() {
		if err := c.Storage.Validate(); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	if c.DefaultGame == "" {
		return errors.New("default_game must be specified")
	}
	return nil
}

// Load unmarshals the configuration viper currently holds and validates it.
// Call after viper has read the config file and bound environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// SetDefaults registers every configuration default with viper.
func SetDefaults() {
	weights := generator.DefaultWeights()

	viper.SetDefault("app.name", "ozstats")
	viper.SetDefault("app.environment", "development")
	viper.SetDefault("app.debug", false)

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.development", true)

	viper.SetDefault("fetcher.cache_dir", "html_history")
	viper.SetDefault("fetcher.user_agent", fetcher.DefaultUserAgent)
	viper.SetDefault("fetcher.timeout", fetcher.DefaultTimeout)
	viper.SetDefault("fetcher.refresh_interval", fetcher.DefaultRefreshInterval)

	viper.SetDefault("generator.base_weight", weights.BaseWeight)
	viper.SetDefault("generator.frequency_multiplier", weights.FrequencyMultiplier)
	viper.SetDefault("generator.overdue_bonus", weights.OverdueBonus)
	viper.SetDefault("generator.overdue_considered", weights.OverdueConsidered)
	viper.SetDefault("generator.overdue_weight", weights.OverdueWeight)
	viper.SetDefault("generator.frequency_weight", weights.FrequencyWeight)
	viper.SetDefault("generator.base_min_weight", weights.BaseMinWeight)

	viper.SetDefault("storage.path", "ozstats.db")
	viper.SetDefault("output.file", "output.txt")
	viper.SetDefault("games_file", "games.yaml")
	viper.SetDefault("default_game", "oz-lotto")
}
