// Package config loads diskspace settings from an optional YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"diskspace/pkg/humanizer"
	"diskspace/pkg/log"
)

const (
	DefaultListen       = ":8080"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = log.FormatConsole
	DefaultQueryTimeout = 10 * time.Second

	envPrefix = "DISKSPACE_"
)

// Config holds application configuration.
type Config struct {
	// Listen is the HTTP server address.
	Listen string `yaml:"listen"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
	// LogFormat is console or json.
	LogFormat string `yaml:"log_format"`
	// Humanize selects byte rendering: off (default), binary or decimal.
	Humanize humanizer.Mode `yaml:"humanize"`
	// QueryTimeout bounds a single capacity query made by the server.
	QueryTimeout time.Duration `yaml:"query_timeout"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Listen:       DefaultListen,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Humanize:     humanizer.ModeOff,
		QueryTimeout: DefaultQueryTimeout,
	}
}

// Load reads path (if not empty) over the defaults, applies DISKSPACE_*
// environment overrides and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "LISTEN"); ok {
		c.Listen = v
	}
	if v, ok := lookup(envPrefix + "LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup(envPrefix + "LOG_FORMAT"); ok {
		c.LogFormat = v
	}
	if v, ok := lookup(envPrefix + "HUMANIZE"); ok {
		mode, err := humanizer.ParseMode(v)
		if err != nil {
			return fmt.Errorf("%sHUMANIZE: %w", envPrefix, err)
		}
		c.Humanize = mode
	}
	if v, ok := lookup(envPrefix + "QUERY_TIMEOUT"); ok {
		timeout, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sQUERY_TIMEOUT: %w", envPrefix, err)
		}
		c.QueryTimeout = timeout
	}
	return nil
}

// Validate checks that every field holds a usable value.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Listen) == "" {
		errs = append(errs, errors.New("listen address is empty"))
	}
	if c.LogFormat != log.FormatConsole && c.LogFormat != log.FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q (want console or json)", c.LogFormat))
	}
	if _, err := humanizer.ParseMode(string(c.Humanize)); err != nil {
		errs = append(errs, err)
	}
	if c.QueryTimeout <= 0 {
		errs = append(errs, fmt.Errorf("query timeout must be positive, got %s", c.QueryTimeout))
	}

	return errors.Join(errs...)
}
