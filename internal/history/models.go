package history

import "time"

// Run is one recorded file-processing invocation.
type Run struct {
	ID                int64
	RunID             string
	InputPath         string
	OutputPath        string
	MappingPath       string
	TotalLines        int
	TotalWords        int
	TotalReplacements int
	ReplacementRate   float64
	Duration          time.Duration
	CreatedAt         time.Time
}

// DatabaseHealth carries diagnostic information about the history database.
type DatabaseHealth struct {
	DBPath           string
	DatabaseExists   bool
	DatabaseReadable bool
	SchemaVersion    string
	TableExists      bool
	ColumnsPresent   []string
	MissingColumns   []string
	IntegrityCheck   bool
	TotalRuns        int
	Error            string
}
