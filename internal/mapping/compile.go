package mapping

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
)

// LoadDraft reads a mapping document without building lookup tables and
// without requiring the derived sections. Only the concept table is
// mandatory, so hand-edited drafts can be checked and compiled.
func LoadDraft(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open mapping file: %w", err)
	}

	var probe struct {
		Metadata      *Metadata         `json:"metadata"`
		Mappings      map[string]Entry  `json:"mappings"`
		ReverseLookup map[string]string `json:"reverse_lookup"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w: %v", path, ErrParse, err)
	}
	if probe.Mappings == nil {
		return nil, fmt.Errorf("parse mapping file %s: %w: missing mappings section", path, ErrParse)
	}
	if err := validateEntries(probe.Mappings); err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w: %v", path, ErrParse, err)
	}

	doc := Document{
		Mappings:      probe.Mappings,
		ReverseLookup: probe.ReverseLookup,
	}
	if probe.Metadata != nil {
		doc.Metadata = *probe.Metadata
	}
	if doc.ReverseLookup == nil {
		doc.ReverseLookup = map[string]string{}
	}
	return &doc, nil
}

// Compile rebuilds the reverse lookup from the concept table and refreshes
// the metadata counts. Concept keys are visited in sorted order, so a synonym
// claimed by multiple concepts resolves the same way on every run.
func (d *Document) Compile() {
	keys := make([]string, 0, len(d.Mappings))
	for key := range d.Mappings {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	reverse := make(map[string]string)
	synonyms := 0
	for _, key := range keys {
		entry := d.Mappings[key]
		for _, synonym := range entry.Synonyms {
			reverse[synonym] = entry.Canonical
		}
		synonyms += len(entry.Synonyms)
	}

	d.ReverseLookup = reverse
	d.Metadata.TotalMappings = len(d.Mappings)
	d.Metadata.TotalSynonyms = synonyms
}

// Save writes the document to path as indented JSON.
func (d *Document) Save(path string) error {
	payload, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode mapping document: %w", err)
	}
	payload = append(payload, '\n')
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write mapping file: %w", err)
	}
	return nil
}
