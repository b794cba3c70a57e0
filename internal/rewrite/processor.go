package rewrite

import (
	"strings"

	"canonize/internal/mapping"
)

// Replacement records one substitution. Position is the 0-based index of
// the token in the whitespace-token sequence; Original is the core word
// before case shaping and Canonical the resolved form before it.
type Replacement struct {
	Position  int    `json:"position"`
	Original  string `json:"original"`
	Canonical string `json:"canonical"`
}

// ProcessingStats summarizes one ProcessText call.
type ProcessingStats struct {
	TotalWords       int           `json:"total_words"`
	ReplacementsMade int           `json:"replacements_made"`
	ReplacementRate  float64       `json:"replacement_rate"`
	Replacements     []Replacement `json:"replacements"`
}

// Processor applies a mapping table to text. The table is immutable after
// construction, so a single processor is safe for concurrent ProcessText
// calls.
type Processor struct {
	table *mapping.Table
}

// NewProcessor wraps table in a processor.
func NewProcessor(table *mapping.Table) *Processor {
	return &Processor{table: table}
}

// Table returns the mapping table the processor resolves against.
func (p *Processor) Table() *mapping.Table { return p.table }

// ProcessText rewrites every recognized synonym in text to its canonical
// form. Tokens are split on whitespace runs; a token that fails the affix
// split or does not resolve is emitted byte for byte. Resolved tokens keep
// their affixes, and with preserveCase the canonical is shaped after the
// original's casing; without it the canonical is used exactly as stored.
// Output tokens are joined with single spaces, so original whitespace runs
// collapse.
func (p *Processor) ProcessText(text string, preserveCase bool) (string, ProcessingStats) {
	words := strings.Fields(text)
	processed := make([]string, 0, len(words))
	var replacements []Replacement

	for i, word := range words {
		prefix, core, suffix, ok := SplitAffixes(word)
		if !ok {
			processed = append(processed, word)
			continue
		}
		canonical, ok := p.table.Resolve(core)
		if !ok {
			processed = append(processed, word)
			continue
		}

		replaced := canonical
		if preserveCase {
			replaced = MatchCase(core, canonical)
		}
		processed = append(processed, prefix+replaced+suffix)
		replacements = append(replacements, Replacement{
			Position:  i,
			Original:  core,
			Canonical: canonical,
		})
	}

	stats := ProcessingStats{
		TotalWords:       len(words),
		ReplacementsMade: len(replacements),
		Replacements:     replacements,
	}
	if stats.TotalWords > 0 {
		stats.ReplacementRate = float64(stats.ReplacementsMade) / float64(stats.TotalWords)
	}
	return strings.Join(processed, " "), stats
}
