package rewrite

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchCase shapes canonical after the casing of original. Three ordered
// rules: an all-uppercase original upper-cases the whole canonical, an
// original with a leading uppercase letter capitalizes only the canonical's
// first rune, and everything else lower-cases it. Originals with no letters
// (digit runs, the empty string) take the lower-case rule, since digits
// never count as uppercase.
func MatchCase(original, canonical string) string {
	if original != "" && allUpper(original) {
		return strings.ToUpper(canonical)
	}
	if first, _ := utf8.DecodeRuneInString(original); unicode.IsUpper(first) {
		return upperFirst(canonical)
	}
	return strings.ToLower(canonical)
}

func allUpper(s string) bool {
	for _, r := range s {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// upperFirst upper-cases only the first rune, leaving the remainder exactly
// as stored in the dictionary.
func upperFirst(s string) string {
	first, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	upper := unicode.ToUpper(first)
	if upper == first {
		return s
	}
	return string(upper) + s[size:]
}
