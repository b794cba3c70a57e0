package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeMapping(); err != nil {
		return err
	}
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeMapping() error {
	c.Mapping.Path = strings.TrimSpace(c.Mapping.Path)
	if c.Mapping.Path == "" {
		if value, ok := os.LookupEnv("CANONIZE_MAPPINGS"); ok {
			c.Mapping.Path = strings.TrimSpace(value)
		}
	}
	if c.Mapping.Path == "" {
		c.Mapping.Path = defaultMappingPath
	}
	var err error
	if c.Mapping.Path, err = expandPath(c.Mapping.Path); err != nil {
		return fmt.Errorf("mapping.path: %w", err)
	}
	return nil
}

func (c *Config) normalizeHistory() error {
	c.History.Dir = strings.TrimSpace(c.History.Dir)
	if c.History.Dir == "" {
		c.History.Dir = defaultHistoryDir
	}
	var err error
	if c.History.Dir, err = expandPath(c.History.Dir); err != nil {
		return fmt.Errorf("history.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
