package main

import (
	"strings"
	"testing"
)

func TestApplyCommandRewritesArgs(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "apply", "The", "large", "building")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got, want := strings.TrimSuffix(stdout, "\n"), "The big building"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestApplyCommandReadsStdin(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLIWithInput(t, env.configPath, "The LARGE building made me JOYFUL.", "apply")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	requireContains(t, stdout, "The BIG building made me HAPPY.")
}

func TestApplyCommandNoPreserveCase(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "apply", "LARGE", "--preserve-case=false")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	if got, want := strings.TrimSuffix(stdout, "\n"), "big"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestApplyCommandReplacementsTable(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "apply", "the", "large", "dog", "was", "glad", "--replacements")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	requireContains(t, stdout, "the big dog was happy")
	requireContains(t, stdout, "Position")
	requireContains(t, stdout, "large")
	requireContains(t, stdout, "glad")
}

func TestApplyCommandNoReplacements(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "apply", "nothing", "matches", "--replacements")
	if err != nil {
		t.Fatalf("apply failed: %v", err)
	}
	requireContains(t, stdout, "nothing matches")
	requireContains(t, stdout, "No replacements made")
}
