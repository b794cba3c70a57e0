// Package testsupport provides shared helpers for package tests: temp-dir
// backed configs, dictionary fixtures, and history store setup.
package testsupport

import (
	"path/filepath"
	"testing"

	"canonize/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Mapping.Path = filepath.Join(base, "mappings.json")
	cfgVal.History.Enabled = true
	cfgVal.History.Dir = filepath.Join(base, "history")

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithMappingPath overrides the dictionary path on the test config.
func WithMappingPath(path string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Mapping.Path = path
	}
}

// WithAccentFolding enables accent-folded lookups on the test config.
func WithAccentFolding() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Mapping.FoldAccents = true
	}
}

// WithKeepRuns overrides the history retention count.
func WithKeepRuns(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.KeepRuns = n
	}
}

// WithHistoryDisabled turns off run recording on the test config.
func WithHistoryDisabled() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.History.Enabled = false
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.History.Dir)
}
