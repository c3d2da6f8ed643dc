package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

const (
	// LogFormatText selects slog's text handler.
	LogFormatText = "text"

	// LogFormatJSON selects slog's JSON handler.
	LogFormatJSON = "json"
)

var ErrInvalidLogFormat = errors.New("invalid log format")
var ErrInvalidLogLevel = errors.New("invalid log level")

// Config holds the settings of the self-test binary.
type Config struct {
	DataFile             string `env:"ROSTER_DATA_FILE"`
	LogLevel             string `env:"ROSTER_LOG_LEVEL"             envDefault:"info"`
	LogFormat            string `env:"ROSTER_LOG_FORMAT"            envDefault:"text"`
	ObservabilityEnabled bool   `env:"ROSTER_OBSERVABILITY_ENABLED" envDefault:"false"`
	ServiceName          string `env:"ROSTER_SERVICE_NAME"          envDefault:"rosterselftest"`
}

// LoadFromEnv parses the ROSTER_* environment variables and validates the result.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the log format and log level.
func (c Config) Validate() error {
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}

	if _, err := c.SlogLevel(); err != nil {
		return err
	}

	return nil
}

// SlogLevel converts LogLevel ("debug", "info", "warn", "error", optionally with an offset like "info+2").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}

	return level, nil
}

// HasDataFile reports whether a roster file was configured.
func (c Config) HasDataFile() bool {
	return c.DataFile != ""
}
