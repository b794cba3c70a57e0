// Package rewrite implements canonical-vocabulary substitution: it walks
// whitespace-delimited tokens, strips punctuation affixes, resolves each core
// word against a mapping table, and reassembles the text with canonical
// forms shaped after the original casing.
//
// Two tokenization rules coexist on purpose. The affix splitter is anchored
// to token boundaries and refuses tokens with interior punctuation, so
// substitution never rewrites inside contractions. Vocabulary statistics use
// a broader scan that counts every word-character run in the raw text. The
// two rules report different word totals for the same input; callers must
// not treat them as interchangeable.
package rewrite
