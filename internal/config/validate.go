package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMapping(); err != nil {
		return err
	}
	if err := c.validateStats(); err != nil {
		return err
	}
	if err := c.validateHistory(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateMapping() error {
	if strings.TrimSpace(c.Mapping.Path) == "" {
		return errors.New("mapping.path must be set")
	}
	return nil
}

func (c *Config) validateStats() error {
	if c.Stats.TopWords <= 0 {
		return errors.New("stats.top_words must be positive")
	}
	return nil
}

func (c *Config) validateHistory() error {
	if !c.History.Enabled {
		return nil
	}
	if strings.TrimSpace(c.History.Dir) == "" {
		return errors.New("history.dir must be set when history.enabled is true")
	}
	if c.History.KeepRuns <= 0 {
		return errors.New("history.keep_runs must be positive when history.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level)
	}
	return nil
}
