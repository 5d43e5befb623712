// Package report renders comparison results for terminals and scripts.
//
// Three formats are supported: the plain text summary ("Total Levenshtein
// Distance" followed by one line per differing pair), a rounded go-pretty
// table, and indented JSON. Any format can carry the character-level edit
// view from internal/pairdiff.
package report
