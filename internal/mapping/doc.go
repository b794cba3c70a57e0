// Package mapping loads synonym dictionaries and builds the lookup tables
// the rewrite engine resolves words against.
//
// A dictionary document carries three sections: a metadata header, a concept
// table keyed by concept name, and a reverse lookup from surface synonym to
// canonical form. Load parses a complete document and derives a lower-cased
// shadow index for case-insensitive resolution; WithAccentFolding adds a
// further index with combining marks stripped. LoadDraft accepts partial
// documents so hand-edited concept tables can be checked and compiled into
// the full schema.
package mapping
