package rewrite_test

import (
	"testing"

	"canonize/internal/mapping"
	"canonize/internal/rewrite"
)

func newTestProcessor() *rewrite.Processor {
	table := mapping.New(mapping.Document{
		ReverseLookup: map[string]string{
			"large":  "big",
			"huge":   "big",
			"joyful": "happy",
			"glad":   "happy",
		},
	})
	return rewrite.NewProcessor(table)
}

func TestProcessTextReplacesAndPreservesCase(t *testing.T) {
	processor := newTestProcessor()

	out, stats := processor.ProcessText("The large building made me joyful.", true)
	if out != "The big building made me happy." {
		t.Fatalf("output = %q, want %q", out, "The big building made me happy.")
	}
	if stats.TotalWords != 6 {
		t.Fatalf("TotalWords = %d, want 6", stats.TotalWords)
	}
	if stats.ReplacementsMade != 2 {
		t.Fatalf("ReplacementsMade = %d, want 2", stats.ReplacementsMade)
	}
	if want := 2.0 / 6.0; stats.ReplacementRate != want {
		t.Fatalf("ReplacementRate = %v, want %v", stats.ReplacementRate, want)
	}

	if len(stats.Replacements) != 2 {
		t.Fatalf("len(Replacements) = %d, want 2", len(stats.Replacements))
	}
	first := stats.Replacements[0]
	if first.Position != 1 || first.Original != "large" || first.Canonical != "big" {
		t.Fatalf("Replacements[0] = %+v, want position 1 large->big", first)
	}
	second := stats.Replacements[1]
	if second.Position != 5 || second.Original != "joyful" || second.Canonical != "happy" {
		t.Fatalf("Replacements[1] = %+v, want position 5 joyful->happy", second)
	}
}

func TestProcessTextUppercaseInput(t *testing.T) {
	processor := newTestProcessor()

	out, _ := processor.ProcessText("The LARGE building made me JOYFUL.", true)
	if out != "The BIG building made me HAPPY." {
		t.Fatalf("output = %q, want %q", out, "The BIG building made me HAPPY.")
	}
}

func TestProcessTextWithoutCasePreservation(t *testing.T) {
	processor := newTestProcessor()

	out, stats := processor.ProcessText("The LARGE building made me JOYFUL.", false)
	if out != "The big building made me happy." {
		t.Fatalf("output = %q, want %q", out, "The big building made me happy.")
	}
	if stats.ReplacementsMade != 2 {
		t.Fatalf("ReplacementsMade = %d, want 2", stats.ReplacementsMade)
	}
}

func TestProcessTextKeepsStoredCaseWhenNotPreserving(t *testing.T) {
	table := mapping.New(mapping.Document{
		ReverseLookup: map[string]string{"large": "BIG"},
	})
	processor := rewrite.NewProcessor(table)

	out, _ := processor.ProcessText("a large one", false)
	if out != "a BIG one" {
		t.Fatalf("output = %q, want %q", out, "a BIG one")
	}

	out, _ = processor.ProcessText("a large one", true)
	if out != "a big one" {
		t.Fatalf("output with case shaping = %q, want %q", out, "a big one")
	}
}

func TestProcessTextPassthrough(t *testing.T) {
	processor := newTestProcessor()

	const text = "Nothing here matches the dictionary."
	out, stats := processor.ProcessText(text, true)
	if out != text {
		t.Fatalf("output = %q, want input unchanged", out)
	}
	if stats.ReplacementsMade != 0 {
		t.Fatalf("ReplacementsMade = %d, want 0", stats.ReplacementsMade)
	}
	if stats.TotalWords != 5 {
		t.Fatalf("TotalWords = %d, want 5", stats.TotalWords)
	}
}

func TestProcessTextIdempotentOnCanonicalText(t *testing.T) {
	processor := newTestProcessor()

	once, _ := processor.ProcessText("The large building made me joyful.", true)
	twice, stats := processor.ProcessText(once, true)
	if twice != once {
		t.Fatalf("second pass changed text: %q -> %q", once, twice)
	}
	if stats.ReplacementsMade != 0 {
		t.Fatalf("second pass ReplacementsMade = %d, want 0", stats.ReplacementsMade)
	}
}

func TestProcessTextInteriorPunctuationPassesThrough(t *testing.T) {
	processor := newTestProcessor()

	out, stats := processor.ProcessText("don't large-ish large", true)
	if out != "don't large-ish big" {
		t.Fatalf("output = %q, want %q", out, "don't large-ish big")
	}
	if stats.ReplacementsMade != 1 {
		t.Fatalf("ReplacementsMade = %d, want 1", stats.ReplacementsMade)
	}
	if stats.Replacements[0].Position != 2 {
		t.Fatalf("Replacements[0].Position = %d, want 2", stats.Replacements[0].Position)
	}
}

func TestProcessTextKeepsAffixes(t *testing.T) {
	processor := newTestProcessor()

	out, _ := processor.ProcessText(`"(large)!" glad,`, true)
	if out != `"(big)!" happy,` {
		t.Fatalf("output = %q, want %q", out, `"(big)!" happy,`)
	}
}

func TestProcessTextCollapsesWhitespace(t *testing.T) {
	processor := newTestProcessor()

	out, stats := processor.ProcessText("  large\t\thuge \n glad  ", true)
	if out != "big big happy" {
		t.Fatalf("output = %q, want %q", out, "big big happy")
	}
	if stats.TotalWords != 3 {
		t.Fatalf("TotalWords = %d, want 3", stats.TotalWords)
	}
}

func TestProcessTextEmptyInput(t *testing.T) {
	processor := newTestProcessor()

	out, stats := processor.ProcessText("", true)
	if out != "" {
		t.Fatalf("output = %q, want empty", out)
	}
	if stats.TotalWords != 0 || stats.ReplacementsMade != 0 {
		t.Fatalf("stats = %+v, want zero counts", stats)
	}
	if stats.ReplacementRate != 0 {
		t.Fatalf("ReplacementRate = %v, want 0", stats.ReplacementRate)
	}
}

func TestProcessTextCaseInsensitiveResolution(t *testing.T) {
	processor := newTestProcessor()

	out, _ := processor.ProcessText("Large HUGE gLaD", true)
	if out != "Big BIG happy" {
		t.Fatalf("output = %q, want %q", out, "Big BIG happy")
	}
}
