package mapping

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
)

// ErrParse marks a mapping document that could not be decoded or that is
// missing a required section.
var ErrParse = errors.New("malformed mapping document")

// Metadata is the descriptive header of a mapping document. The counts are
// informational and are not validated against the actual tables at load time.
type Metadata struct {
	Version       string   `json:"version"`
	Description   string   `json:"description"`
	CreationDate  string   `json:"creation_date"`
	TotalMappings int      `json:"total_mappings"`
	Sources       []string `json:"sources"`
	TotalSynonyms int      `json:"total_synonyms"`
}

// Entry is one canonical concept and its known synonym set.
type Entry struct {
	Canonical     string   `json:"canonical"`
	Synonyms      []string `json:"synonyms"`
	FrequencyRank int      `json:"frequency_rank"`
	Domain        string   `json:"domain"`
}

// Document is the on-disk dictionary schema.
type Document struct {
	Metadata      Metadata          `json:"metadata"`
	Mappings      map[string]Entry  `json:"mappings"`
	ReverseLookup map[string]string `json:"reverse_lookup"`
}

// Table holds the loaded reverse lookup plus its derived indexes. It is
// immutable after construction and safe for concurrent readers.
type Table struct {
	doc    Document
	lower  map[string]string
	folded map[string]string
}

// Option adjusts table construction.
type Option func(*tableOptions)

type tableOptions struct {
	foldAccents bool
}

// WithAccentFolding adds a lookup tier that strips combining marks, so an
// input like "café" matches a dictionary entry stored as "cafe".
func WithAccentFolding() Option {
	return func(o *tableOptions) { o.foldAccents = true }
}

// Load reads a mapping document from path and builds the lookup table. All
// three top-level sections are required; no table is returned on failure.
func Load(path string, opts ...Option) (*Table, error) {
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
	switch {
	case probe.Metadata == nil:
		return nil, fmt.Errorf("parse mapping file %s: %w: missing metadata section", path, ErrParse)
	case probe.Mappings == nil:
		return nil, fmt.Errorf("parse mapping file %s: %w: missing mappings section", path, ErrParse)
	case probe.ReverseLookup == nil:
		return nil, fmt.Errorf("parse mapping file %s: %w: missing reverse_lookup section", path, ErrParse)
	}
	if err := validateEntries(probe.Mappings); err != nil {
		return nil, fmt.Errorf("parse mapping file %s: %w: %v", path, ErrParse, err)
	}

	doc := Document{
		Metadata:      *probe.Metadata,
		Mappings:      probe.Mappings,
		ReverseLookup: probe.ReverseLookup,
	}
	return New(doc, opts...), nil
}

// validateEntries walks concept keys in sorted order so the reported entry
// is stable across runs. A synonyms key holding an empty list is legal; an
// absent one is not.
func validateEntries(entries map[string]Entry) error {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		entry := entries[key]
		if entry.Canonical == "" {
			return fmt.Errorf("entry %q missing canonical", key)
		}
		if entry.Synonyms == nil {
			return fmt.Errorf("entry %q missing synonyms", key)
		}
	}
	return nil
}

// New builds a lookup table from an in-memory document.
func New(doc Document, opts ...Option) *Table {
	var options tableOptions
	for _, opt := range opts {
		opt(&options)
	}

	// Sorted iteration keeps the derived indexes deterministic when keys
	// collide after lower-casing or folding.
	keys := make([]string, 0, len(doc.ReverseLookup))
	for key := range doc.ReverseLookup {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	table := &Table{
		doc:   doc,
		lower: make(map[string]string, len(keys)),
	}
	for _, key := range keys {
		table.lower[strings.ToLower(key)] = doc.ReverseLookup[key]
	}
	if options.foldAccents {
		table.folded = make(map[string]string, len(keys))
		for _, key := range keys {
			table.folded[foldAccents(strings.ToLower(key))] = doc.ReverseLookup[key]
		}
	}
	return table
}

// Resolve maps a core word to its canonical form. Exact matches win over
// case-insensitive matches, which win over accent-folded matches.
func (t *Table) Resolve(word string) (string, bool) {
	if canonical, ok := t.doc.ReverseLookup[word]; ok {
		return canonical, true
	}
	if canonical, ok := t.lower[strings.ToLower(word)]; ok {
		return canonical, true
	}
	if t.folded != nil {
		if canonical, ok := t.folded[foldAccents(strings.ToLower(word))]; ok {
			return canonical, true
		}
	}
	return "", false
}

// Metadata returns the document header.
func (t *Table) Metadata() Metadata { return t.doc.Metadata }

// Len reports the number of synonym entries in the reverse lookup.
func (t *Table) Len() int { return len(t.doc.ReverseLookup) }

// Concepts returns the concept keys in sorted order.
func (t *Table) Concepts() []string {
	keys := make([]string, 0, len(t.doc.Mappings))
	for key := range t.doc.Mappings {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Entry returns the concept entry for key.
func (t *Table) Entry(key string) (Entry, bool) {
	entry, ok := t.doc.Mappings[key]
	return entry, ok
}
