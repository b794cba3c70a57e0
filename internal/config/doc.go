// Package config loads, normalizes, and validates canonize configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// CANONIZE_MAPPINGS. The Config type centralizes every knob the CLI needs, so
// dictionary location, history retention, and log routing are discovered in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
