package cliconfig

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/photom/photom/pkg/apiclient"
)

// DefaultBaseURL is the backend used when nothing else is configured.
const DefaultBaseURL = apiclient.DefaultBaseURL

// PublicAPIURLEnv names the public configuration value that supplies the
// default base URL, shared with the web frontend.
const PublicAPIURLEnv = "PUBLIC_API_URL"

// Output formats.
const (
	OutputJSON  = "json"
	OutputTable = "table"
)

// Config holds CLI configuration for photomctl.
type Config struct {
	BaseURL     string
	HTTPTimeout time.Duration

	LogLevel string
	Output   string

	StrictStatus bool
	Debug        bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	baseURL := os.Getenv(PublicAPIURLEnv)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return Config{
		BaseURL:     baseURL,
		HTTPTimeout: 30 * time.Second,
		LogLevel:    "info",
		Output:      OutputJSON,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}

	// Request paths start with a slash
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		return fmt.Errorf("base-url must not be only slashes")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}

	switch c.Output {
	case OutputJSON, OutputTable:
	case "":
		c.Output = OutputJSON
	default:
		return fmt.Errorf("output must be %q or %q, got %q", OutputJSON, OutputTable, c.Output)
	}

	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log-level: %w", err)
	}
	return lvl, nil
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
