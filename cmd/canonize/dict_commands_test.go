package main

import (
	"path/filepath"
	"testing"

	"canonize/internal/mapping"
	"canonize/internal/testsupport"
)

func TestDictShowListsEntries(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "dict", "show")
	if err != nil {
		t.Fatalf("dict show failed: %v", err)
	}

	requireContains(t, stdout, "Version: 1.0")
	requireContains(t, stdout, "Mappings: 2")
	requireContains(t, stdout, "Synonyms: 4")
	requireContains(t, stdout, "size_big")
	requireContains(t, stdout, "emotion_happy")
	requireContains(t, stdout, "large, huge")
}

func TestDictCheckCleanDictionary(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, _, err := runCLI(t, env.configPath, "dict", "check")
	if err != nil {
		t.Fatalf("dict check failed: %v", err)
	}
	requireContains(t, stdout, "Dictionary Check")
	requireContains(t, stdout, "dictionary is consistent")
}

func TestDictCheckFindsInconsistencies(t *testing.T) {
	env := setupCLITestEnv(t)
	doc := testsupport.SampleDictionary()
	doc.ReverseLookup["tiny"] = "small"
	delete(doc.ReverseLookup, "glad")
	path := filepath.Join(env.baseDir, "broken.json")
	testsupport.WriteDictionary(t, path, doc)

	stdout, _, err := runCLI(t, env.configPath, "dict", "check", "--mapping", path)
	if err != nil {
		t.Fatalf("dict check failed: %v", err)
	}
	requireContains(t, stdout, "small")
	requireContains(t, stdout, "glad")
	requireContains(t, stdout, "inconsistencies found")
}

func TestDictCompileRebuildsReverseLookup(t *testing.T) {
	env := setupCLITestEnv(t)
	draft := filepath.Join(env.baseDir, "draft.json")
	compiled := filepath.Join(env.baseDir, "compiled.json")
	writeFile(t, draft, `{"mappings": {"size_big": {"canonical": "big", "synonyms": ["large", "huge"]}}}`)

	stdout, _, err := runCLI(t, env.configPath, "dict", "compile", "--from", draft, "--to", compiled)
	if err != nil {
		t.Fatalf("dict compile failed: %v", err)
	}
	requireContains(t, stdout, "Compiled 1 mappings (2 synonyms)")

	table, err := mapping.Load(compiled)
	if err != nil {
		t.Fatalf("load compiled dictionary: %v", err)
	}
	if canonical, ok := table.Resolve("huge"); !ok || canonical != "big" {
		t.Fatalf("Resolve(huge) = %q, %v; want big, true", canonical, ok)
	}
}

func TestDictCompileRequiresPaths(t *testing.T) {
	_, _, err := runCLI(t, "", "dict", "compile")
	if err == nil {
		t.Fatal("expected error without --from/--to")
	}
	requireContains(t, err.Error(), "--from and --to are required")
}
