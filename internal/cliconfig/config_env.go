package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (PHOTOM_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("base-url", os.Getenv("PHOTOM_BASE_URL"), &cfg.BaseURL)
	s.setString("log-level", os.Getenv("PHOTOM_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("output", os.Getenv("PHOTOM_OUTPUT"), &cfg.Output)

	if err := s.setDuration("timeout", os.Getenv("PHOTOM_HTTP_TIMEOUT"), &cfg.HTTPTimeout); err != nil {
		return err
	}

	s.setBoolFromString("strict-status", os.Getenv("PHOTOM_STRICT_STATUS"), &cfg.StrictStatus)
	s.setBoolFromString("debug", os.Getenv("PHOTOM_DEBUG"), &cfg.Debug)

	return nil
}
