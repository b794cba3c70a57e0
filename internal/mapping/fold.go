package mapping

import (
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Transformer chains carry internal buffers, so a pool keeps concurrent
// lookups from sharing one.
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	},
}

// foldAccents strips combining marks so accented spellings match their plain
// forms (e.g. "élodie" -> "elodie"). Input that fails to transform is
// returned unchanged.
func foldAccents(s string) string {
	t := foldPool.Get().(transform.Transformer)
	defer foldPool.Put(t)

	result, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return result
}
