package main

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestStatsCommandReportsVocabulary(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "input.txt")
	writeFile(t, input, "large huge big large\n")

	stdout, _, err := runCLI(t, env.configPath, "stats", "--input", input)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}

	requireContains(t, stdout, "Total words: 4")
	requireContains(t, stdout, "Original vocabulary size: 3")
	requireContains(t, stdout, "Processed vocabulary size: 1")
	requireContains(t, stdout, "Vocabulary reduction: 2")
	requireContains(t, stdout, "Reduction rate: 66.67%")
	requireContains(t, stdout, "Word")
	requireContains(t, stdout, "large")
}

func TestStatsCommandTopLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	input := filepath.Join(env.baseDir, "input.txt")
	writeFile(t, input, "alpha beta beta gamma gamma gamma\n")

	stdout, _, err := runCLI(t, env.configPath, "stats", "--input", input, "--top", "1")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	requireContains(t, stdout, "gamma")
	if strings.Contains(stdout, "alpha") {
		t.Fatalf("expected only the top word, got %q", stdout)
	}
}

func TestStatsCommandMissingInput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "stats", "--input", filepath.Join(env.baseDir, "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestStatsCommandRequiresInput(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env.configPath, "stats")
	if err == nil {
		t.Fatal("expected error without --input")
	}
	requireContains(t, err.Error(), "--input is required")
}
