package rewrite

import (
	"fmt"
	"os"
	"regexp"
	"slices"
	"strings"
)

// wordPattern matches any maximal word-character run anywhere in the text.
// Deliberately broader than affixPattern: this rule does split "don't" into
// "don" and "t". Vocabulary counts depend on that difference, so the two
// patterns must stay separate.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// VocabularyStats compares the distinct-word sets of a text before and
// after substitution.
type VocabularyStats struct {
	OriginalVocabularySize  int     `json:"original_vocabulary_size"`
	ProcessedVocabularySize int     `json:"processed_vocabulary_size"`
	VocabularyReduction     int     `json:"vocabulary_reduction"`
	ReductionRate           float64 `json:"reduction_rate"`
	TotalWords              int     `json:"total_words"`
}

// VocabularyStats scans the file at path, runs the whole content through
// ProcessText with case preservation on, and reports how far the distinct
// vocabulary shrank. Reduction is signed; substitution can grow the
// vocabulary when canonicals introduce words the original never used.
// TotalWords counts broad-rule word tokens in the original content, not
// whitespace tokens.
func (p *Processor) VocabularyStats(path string) (VocabularyStats, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return VocabularyStats{}, fmt.Errorf("read text file: %w", err)
	}

	originalWords := wordPattern.FindAllString(strings.ToLower(string(content)), -1)
	originalVocab := distinct(originalWords)

	processed, _ := p.ProcessText(string(content), true)
	processedVocab := distinct(wordPattern.FindAllString(strings.ToLower(processed), -1))

	stats := VocabularyStats{
		OriginalVocabularySize:  len(originalVocab),
		ProcessedVocabularySize: len(processedVocab),
		TotalWords:              len(originalWords),
	}
	stats.VocabularyReduction = stats.OriginalVocabularySize - stats.ProcessedVocabularySize
	if stats.OriginalVocabularySize > 0 {
		stats.ReductionRate = float64(stats.VocabularyReduction) / float64(stats.OriginalVocabularySize)
	}
	return stats, nil
}

func distinct(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		set[word] = struct{}{}
	}
	return set
}

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TopWords returns the n most frequent broad-rule words in content,
// lower-cased. Ties break alphabetically.
func TopWords(content string, n int) []WordCount {
	if n <= 0 {
		return nil
	}

	counts := map[string]int{}
	for _, word := range wordPattern.FindAllString(strings.ToLower(content), -1) {
		counts[word]++
	}

	out := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		out = append(out, WordCount{Word: word, Count: count})
	}
	slices.SortFunc(out, func(a, b WordCount) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Word, b.Word)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
