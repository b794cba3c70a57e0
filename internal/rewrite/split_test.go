package rewrite_test

import (
	"testing"

	"canonize/internal/rewrite"
)

func TestSplitAffixes(t *testing.T) {
	cases := []struct {
		name   string
		token  string
		prefix string
		core   string
		suffix string
		ok     bool
	}{
		{"plain word", "hello", "", "hello", "", true},
		{"trailing punctuation", "hello!", "", "hello", "!", true},
		{"leading punctuation", "(hello", "(", "hello", "", true},
		{"both affixes", "(hello)!", "(", "hello", ")!", true},
		{"quoted", `"joyful."`, `"`, "joyful", `."`, true},
		{"digits", "42nd,", "", "42nd", ",", true},
		{"underscore core", "_tmp_", "", "_tmp_", "", true},
		{"accented word", "café!", "", "café", "!", true},
		{"interior apostrophe", "don't", "", "", "", false},
		{"hyphenated", "rock-solid", "", "", "", false},
		{"pure punctuation", "!!!", "", "", "", false},
		{"empty", "", "", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefix, core, suffix, ok := rewrite.SplitAffixes(tc.token)
			if ok != tc.ok {
				t.Fatalf("SplitAffixes(%q) ok = %v, want %v", tc.token, ok, tc.ok)
			}
			if prefix != tc.prefix || core != tc.core || suffix != tc.suffix {
				t.Fatalf("SplitAffixes(%q) = %q, %q, %q; want %q, %q, %q",
					tc.token, prefix, core, suffix, tc.prefix, tc.core, tc.suffix)
			}
		})
	}
}
