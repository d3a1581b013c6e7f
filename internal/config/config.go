package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Query    QueryConfig    `mapstructure:"query"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`  // empty = console logging
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// CalendarConfig represents rule table configuration
type CalendarConfig struct {
	// ExtraRulesFile points at an optional JSON file with holiday shift
	// rules for years the built-in table does not cover
	ExtraRulesFile string `mapstructure:"extra_rules_file"`
}

// QueryConfig represents reverse query defaults
type QueryConfig struct {
	// Years searched around the current year when a reverse query gives
	// no explicit year list
	YearsBack    int `mapstructure:"years_back"`
	YearsForward int `mapstructure:"years_forward"`
}

// Default returns the configuration used when no config file exists
func Default() *Config {
	return &Config{
		Log:   LogConfig{Level: "info"},
		Query: QueryConfig{YearsBack: 1, YearsForward: 1},
	}
}

// Load loads configuration from file. A missing config file is not an
// error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.sino-calendar")
		v.AddConfigPath("/etc/sino-calendar")
	}

	v.SetEnvPrefix("SINO_CALENDAR")
	v.AutomaticEnv()

	v.SetDefault("log.level", "info")
	v.SetDefault("query.years_back", 1)
	v.SetDefault("query.years_forward", 1)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath == "" && errors.As(err, &notFound) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}

	if c.Query.YearsBack < 0 {
		return fmt.Errorf("query.years_back must not be negative")
	}
	if c.Query.YearsForward < 0 {
		return fmt.Errorf("query.years_forward must not be negative")
	}

	return nil
}

// DefaultYears returns the year window searched when a reverse query has
// no explicit year list
func (c *QueryConfig) DefaultYears(baseYear int) []int {
	years := make([]int, 0, c.YearsBack+c.YearsForward+1)
	for y := baseYear - c.YearsBack; y <= baseYear+c.YearsForward; y++ {
		years = append(years, y)
	}
	return years
}
