package mapping

import (
	"slices"
	"strings"
)

// Report lists the consistency problems found in a mapping document. All
// slices are deduplicated and sorted.
type Report struct {
	// OrphanCanonicals are reverse lookup values that name no concept
	// canonical.
	OrphanCanonicals []string
	// MissingSynonyms are synonyms listed under a concept but absent from
	// the reverse lookup.
	MissingSynonyms []string
	// DuplicateSynonyms are synonyms claimed by more than one concept; the
	// compiled reverse lookup keeps only one of them.
	DuplicateSynonyms []string
	// CaseCollisions are lower-cased forms shared by multiple reverse
	// lookup keys, where case-insensitive resolution keeps only one.
	CaseCollisions []string
}

// Clean reports whether the document has no findings.
func (r Report) Clean() bool {
	return len(r.OrphanCanonicals) == 0 &&
		len(r.MissingSynonyms) == 0 &&
		len(r.DuplicateSynonyms) == 0 &&
		len(r.CaseCollisions) == 0
}

// Check inspects a document for entries that load fine but resolve in
// surprising ways.
func Check(doc *Document) Report {
	var report Report

	canonicals := make(map[string]struct{}, len(doc.Mappings))
	for _, entry := range doc.Mappings {
		canonicals[entry.Canonical] = struct{}{}
	}

	orphans := map[string]struct{}{}
	for _, canonical := range doc.ReverseLookup {
		if _, ok := canonicals[canonical]; !ok {
			orphans[canonical] = struct{}{}
		}
	}
	report.OrphanCanonicals = sortedKeys(orphans)

	missing := map[string]struct{}{}
	claims := map[string]map[string]struct{}{}
	for concept, entry := range doc.Mappings {
		for _, synonym := range entry.Synonyms {
			if _, ok := doc.ReverseLookup[synonym]; !ok {
				missing[synonym] = struct{}{}
			}
			if claims[synonym] == nil {
				claims[synonym] = map[string]struct{}{}
			}
			claims[synonym][concept] = struct{}{}
		}
	}
	report.MissingSynonyms = sortedKeys(missing)

	duplicates := map[string]struct{}{}
	for synonym, concepts := range claims {
		if len(concepts) > 1 {
			duplicates[synonym] = struct{}{}
		}
	}
	report.DuplicateSynonyms = sortedKeys(duplicates)

	lowered := map[string]int{}
	for key := range doc.ReverseLookup {
		lowered[strings.ToLower(key)]++
	}
	collisions := map[string]struct{}{}
	for form, count := range lowered {
		if count > 1 {
			collisions[form] = struct{}{}
		}
	}
	report.CaseCollisions = sortedKeys(collisions)

	return report
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
