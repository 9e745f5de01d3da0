// Package config loads the pipeline's ambient knobs — input/output
// directories, log level/format, the GUI throttle window, and the per-side
// order book depth — from an optional config file plus BONDPIPE_-prefixed
// environment variables. The driver's only CLI flag is -config, which names
// that file. Layering follows fd1az-arbitrage-bot/internal/config/config.go:
// viper.New, SetEnvPrefix+AutomaticEnv, defaults, optional file, Unmarshal,
// Validate.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds every ambient setting the driver reads at startup.
type Config struct {
	InputDir     string        `mapstructure:"input_dir"`
	OutputDir    string        `mapstructure:"output_dir"`
	LogLevel     string        `mapstructure:"log_level"`
	LogFormat    string        `mapstructure:"log_format"`
	GUIThrottle  time.Duration `mapstructure:"gui_throttle"`
	OrderBookLevels int        `mapstructure:"orderbook_levels"`
}

// Load reads configPath (if non-empty) layered under BONDPIPE_ environment
// variables and the defaults below, then validates the result.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BONDPIPE")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("input_dir", "./input")
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("gui_throttle", 300*time.Millisecond)
	v.SetDefault("orderbook_levels", 5)
}

// Validate rejects settings that would make the pipeline misbehave silently.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	if c.GUIThrottle <= 0 {
		return fmt.Errorf("gui_throttle must be positive, got %s", c.GUIThrottle)
	}
	if c.OrderBookLevels <= 0 {
		return fmt.Errorf("orderbook_levels must be positive, got %d", c.OrderBookLevels)
	}
	return nil
}
