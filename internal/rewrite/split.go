package rewrite

import "regexp"

// affixPattern captures a leading non-word run, the first maximal
// word-character run, and a trailing non-word run. Anchored at both ends:
// tokens with interior punctuation (like "don't" or "rock-solid") do not
// match at all and pass through substitution unchanged.
var affixPattern = regexp.MustCompile(`^([^\p{L}\p{N}_]*)([\p{L}\p{N}_]+)([^\p{L}\p{N}_]*)$`)

// SplitAffixes separates token into punctuation affixes around its core
// word. ok is false when the token carries no word characters or when the
// anchored pattern cannot cover the whole token.
func SplitAffixes(token string) (prefix, core, suffix string, ok bool) {
	parts := affixPattern.FindStringSubmatch(token)
	if parts == nil {
		return "", "", "", false
	}
	return parts[1], parts[2], parts[3], true
}
