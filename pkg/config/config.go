package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ccollicutt/linetools/internal/log"
)

// Load reads a settings file, applies environment overrides and validates.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// FromEnvironment loads the file named by LINETOOLS_CONFIG when set.
// Otherwise it returns defaults with environment overrides applied.
func FromEnvironment(ctx context.Context) (*Config, error) {
	if path := os.Getenv(EnvConfigFile); path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and fills empty fields.
func Validate(cfg *Config) error {
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	if cfg.MaxLineBytes == 0 {
		cfg.MaxLineBytes = DefaultMaxLineBytes
	}
	if cfg.MaxLineBytes < MinMaxLineBytes {
		return fmt.Errorf("max_line_bytes: must be at least %d, got %d", MinMaxLineBytes, cfg.MaxLineBytes)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.LogLevel = level
	}

	if raw := os.Getenv(EnvMaxLineBytes); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxLineBytes, errors.Unwrap(err))
		}
		c.MaxLineBytes = n
	}

	return nil
}
