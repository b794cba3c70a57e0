package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"canonize/internal/config"
	"canonize/internal/history"
	"canonize/internal/mapping"
	"canonize/internal/rewrite"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// resolveMappingPath picks the dictionary path for a command: the --mapping
// flag when given, otherwise the configured path.
func (c *commandContext) resolveMappingPath(mappingFlag string) (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	path := strings.TrimSpace(mappingFlag)
	if path == "" {
		return cfg.Mapping.Path, nil
	}
	return config.ExpandPath(path)
}

func (c *commandContext) loadTable(mappingFlag string) (*mapping.Table, string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, "", err
	}
	path, err := c.resolveMappingPath(mappingFlag)
	if err != nil {
		return nil, "", err
	}
	var opts []mapping.Option
	if cfg.Mapping.FoldAccents {
		opts = append(opts, mapping.WithAccentFolding())
	}
	table, err := mapping.Load(path, opts...)
	if err != nil {
		return nil, "", err
	}
	return table, path, nil
}

func (c *commandContext) newProcessor(mappingFlag string) (*rewrite.Processor, string, error) {
	table, path, err := c.loadTable(mappingFlag)
	if err != nil {
		return nil, "", err
	}
	return rewrite.NewProcessor(table), path, nil
}

func (c *commandContext) withHistory(fn func(*history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	store, err := history.Open(cfg)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}

func valueOrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}
