// Package logging assembles the structured slog loggers used across canonize.
//
// It owns the console and JSON handlers, centralizes level and output
// plumbing, and re-exports slog attribute constructors so callers emit fields
// with consistent shapes. The package also provides a no-op logger for tests
// and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// logs with the same format and routing.
package logging
