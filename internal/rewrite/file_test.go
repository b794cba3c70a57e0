package rewrite_test

import (
	"os"
	"path/filepath"
	"testing"
)

func writeInput(t *testing.T, content string) (inputPath, outputPath string) {
	t.Helper()
	dir := t.TempDir()
	inputPath = filepath.Join(dir, "input.txt")
	outputPath = filepath.Join(dir, "output.txt")
	if err := os.WriteFile(inputPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write input file: %v", err)
	}
	return inputPath, outputPath
}

func TestProcessFile(t *testing.T) {
	processor := newTestProcessor()
	inputPath, outputPath := writeInput(t, "The large building.\nIt made me glad.\n")

	stats, err := processor.ProcessFile(inputPath, outputPath)
	if err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}

	if stats.TotalLines != 2 {
		t.Fatalf("TotalLines = %d, want 2", stats.TotalLines)
	}
	if stats.TotalWords != 8 {
		t.Fatalf("TotalWords = %d, want 8", stats.TotalWords)
	}
	if stats.TotalReplacements != 2 {
		t.Fatalf("TotalReplacements = %d, want 2", stats.TotalReplacements)
	}
	if want := 2.0 / 8.0; stats.ReplacementRate != want {
		t.Fatalf("ReplacementRate = %v, want %v", stats.ReplacementRate, want)
	}
	if stats.InputFile != inputPath || stats.OutputFile != outputPath {
		t.Fatalf("stats paths = %q, %q; want %q, %q", stats.InputFile, stats.OutputFile, inputPath, outputPath)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if got := string(out); got != "The big building.\nIt made me happy.\n" {
		t.Fatalf("output content = %q", got)
	}
}

func TestProcessFileAddsFinalNewline(t *testing.T) {
	processor := newTestProcessor()
	inputPath, outputPath := writeInput(t, "large")

	stats, err := processor.ProcessFile(inputPath, outputPath)
	if err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}
	if stats.TotalLines != 1 {
		t.Fatalf("TotalLines = %d, want 1", stats.TotalLines)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if got := string(out); got != "big\n" {
		t.Fatalf("output content = %q, want %q", got, "big\n")
	}
}

func TestProcessFileHandlesCRLF(t *testing.T) {
	processor := newTestProcessor()
	inputPath, outputPath := writeInput(t, "huge news\r\nglad times\r\n")

	stats, err := processor.ProcessFile(inputPath, outputPath)
	if err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}
	if stats.TotalLines != 2 {
		t.Fatalf("TotalLines = %d, want 2", stats.TotalLines)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if got := string(out); got != "big news\nhappy times\n" {
		t.Fatalf("output content = %q, want %q", got, "big news\nhappy times\n")
	}
}

func TestProcessFileEmptyInput(t *testing.T) {
	processor := newTestProcessor()
	inputPath, outputPath := writeInput(t, "")

	stats, err := processor.ProcessFile(inputPath, outputPath)
	if err != nil {
		t.Fatalf("ProcessFile returned error: %v", err)
	}
	if stats.TotalLines != 0 || stats.TotalWords != 0 || stats.TotalReplacements != 0 {
		t.Fatalf("stats = %+v, want zero counts", stats)
	}
	if stats.ReplacementRate != 0 {
		t.Fatalf("ReplacementRate = %v, want 0", stats.ReplacementRate)
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("read output file: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("output content = %q, want empty", out)
	}
}

func TestProcessFileMissingInput(t *testing.T) {
	processor := newTestProcessor()
	dir := t.TempDir()

	_, err := processor.ProcessFile(filepath.Join(dir, "absent.txt"), filepath.Join(dir, "out.txt"))
	if err == nil {
		t.Fatal("expected error for missing input file")
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.txt")); !os.IsNotExist(statErr) {
		t.Fatal("expected no output file after failed run")
	}
}

func TestProcessFileUnwritableOutput(t *testing.T) {
	processor := newTestProcessor()
	inputPath, _ := writeInput(t, "large\n")

	_, err := processor.ProcessFile(inputPath, filepath.Join(t.TempDir(), "missing", "out.txt"))
	if err == nil {
		t.Fatal("expected error for unwritable output path")
	}
}
