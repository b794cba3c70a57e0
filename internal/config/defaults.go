package config

const (
	defaultMappingPath = "~/.local/share/canonize/mappings.json"
	defaultHistoryDir  = "~/.local/share/canonize"
	defaultKeepRuns    = 200
	defaultTopWords    = 10
	defaultLogFormat   = "console"
	defaultLogLevel    = "info"
)

// Default returns a Config populated with repository defaults.
// Mapping.Path is left empty so normalize can consult CANONIZE_MAPPINGS
// before falling back to the packaged default.
func Default() Config {
	return Config{
		Stats: Stats{
			TopWords: defaultTopWords,
		},
		History: History{
			Enabled:  true,
			Dir:      defaultHistoryDir,
			KeepRuns: defaultKeepRuns,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
