package rewrite

import (
	"fmt"
	"os"
	"strings"
)

// FileStats aggregates line-by-line processing of one input file.
type FileStats struct {
	InputFile         string  `json:"input_file"`
	OutputFile        string  `json:"output_file"`
	TotalLines        int     `json:"total_lines"`
	TotalWords        int     `json:"total_words"`
	TotalReplacements int     `json:"total_replacements"`
	ReplacementRate   float64 `json:"replacement_rate"`
}

// ProcessFile rewrites inputPath line by line into outputPath. Case
// preservation is always on for files. Every output line gets a trailing
// newline whether or not the input had one. Processed lines are buffered
// and written in a single call, so a failed run leaves no partial output
// file behind.
func (p *Processor) ProcessFile(inputPath, outputPath string) (FileStats, error) {
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return FileStats{}, fmt.Errorf("read input file: %w", err)
	}

	lines := splitLines(string(content))
	stats := FileStats{
		InputFile:  inputPath,
		OutputFile: outputPath,
		TotalLines: len(lines),
	}

	var out strings.Builder
	out.Grow(len(content) + len(lines))
	for _, line := range lines {
		processed, lineStats := p.ProcessText(line, true)
		out.WriteString(processed)
		out.WriteByte('\n')
		stats.TotalWords += lineStats.TotalWords
		stats.TotalReplacements += lineStats.ReplacementsMade
	}

	if err := os.WriteFile(outputPath, []byte(out.String()), 0o644); err != nil {
		return FileStats{}, fmt.Errorf("write output file: %w", err)
	}

	if stats.TotalWords > 0 {
		stats.ReplacementRate = float64(stats.TotalReplacements) / float64(stats.TotalWords)
	}
	return stats, nil
}

// splitLines iterates full file content as lines: separators are '\n', a
// trailing '\r' is stripped from each line, and a final newline does not
// produce an empty trailing line. strings.Split instead of a scanner keeps
// arbitrarily long lines intact.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
