// Package main hosts the canonize CLI entrypoint and command graph.
//
// The Cobra-based command tree translates terminal invocations into
// dictionary loads, text rewrites, vocabulary statistics, run history
// queries, and configuration scaffolding. It centralizes configuration
// resolution and dictionary selection so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
