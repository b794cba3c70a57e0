package testsupport

import (
	"testing"

	"canonize/internal/config"
	"canonize/internal/mapping"
)

// SampleDictionary returns a compiled dictionary document with the size and
// emotion synonym sets used across tests: large/huge -> big and
// joyful/glad -> happy.
func SampleDictionary() mapping.Document {
	doc := mapping.Document{
		Metadata: mapping.Metadata{
			Version:      "1.0",
			Description:  "test dictionary",
			CreationDate: "2025-01-01",
			Sources:      []string{"testsupport"},
		},
		Mappings: map[string]mapping.Entry{
			"size_big":      {Canonical: "big", Synonyms: []string{"large", "huge"}, FrequencyRank: 1, Domain: "general"},
			"emotion_happy": {Canonical: "happy", Synonyms: []string{"joyful", "glad"}, FrequencyRank: 2, Domain: "general"},
		},
	}
	doc.Compile()
	return doc
}

// WriteDictionary saves doc to path, failing the test on error.
func WriteDictionary(t testing.TB, path string, doc mapping.Document) {
	t.Helper()
	if err := doc.Save(path); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
}

// WriteSampleDictionary saves the sample dictionary at the config's mapping
// path.
func WriteSampleDictionary(t testing.TB, cfg *config.Config) {
	t.Helper()
	WriteDictionary(t, cfg.Mapping.Path, SampleDictionary())
}
