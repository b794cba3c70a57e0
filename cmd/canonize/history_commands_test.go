package main

import (
	"context"
	"path/filepath"
	"testing"

	"canonize/internal/history"
	"canonize/internal/testsupport"
)

func TestHistoryListEmpty(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	requireContains(t, stdout, "No runs recorded")
}

func TestHistoryListShowsRuns(t *testing.T) {
	env := setupCLITestEnv(t)
	store := testsupport.MustOpenStore(t, env.cfg)
	run := &history.Run{
		InputPath:         filepath.Join(env.baseDir, "in.txt"),
		OutputPath:        filepath.Join(env.baseDir, "out.txt"),
		TotalWords:        6,
		TotalReplacements: 2,
		ReplacementRate:   1.0 / 3.0,
	}
	if err := store.RecordRun(context.Background(), run); err != nil {
		t.Fatalf("RecordRun failed: %v", err)
	}

	stdout, _, err := runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	requireContains(t, stdout, "in.txt")
	requireContains(t, stdout, "out.txt")
	requireContains(t, stdout, "33.33%")
}

func TestHistoryClearRemovesRuns(t *testing.T) {
	env := setupCLITestEnv(t)
	store := testsupport.MustOpenStore(t, env.cfg)
	for i := 0; i < 2; i++ {
		run := &history.Run{InputPath: "in.txt", OutputPath: "out.txt"}
		if err := store.RecordRun(context.Background(), run); err != nil {
			t.Fatalf("RecordRun failed: %v", err)
		}
	}

	stdout, _, err := runCLI(t, env.configPath, "history", "clear")
	if err != nil {
		t.Fatalf("history clear failed: %v", err)
	}
	requireContains(t, stdout, "Cleared 2 runs")

	stdout, _, err = runCLI(t, env.configPath, "history")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	requireContains(t, stdout, "No runs recorded")
}

func TestHistoryHealth(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.MustOpenStore(t, env.cfg)

	stdout, _, err := runCLI(t, env.configPath, "history", "health")
	if err != nil {
		t.Fatalf("history health failed: %v", err)
	}
	requireContains(t, stdout, "Database exists: yes")
	requireContains(t, stdout, "runs table present: yes")
	requireContains(t, stdout, "Missing columns: none")
	requireContains(t, stdout, "Integrity check: yes")
	requireContains(t, stdout, "Total runs: 0")
}
