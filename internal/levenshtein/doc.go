// Package levenshtein computes edit distances between words.
//
// Distances are measured over Unicode code points: two runes are equal only
// when they are the same code point, so case folding and apostrophe cleanup
// belong to the caller (see internal/textutil). The package never fails; every
// pair of finite strings has a distance, and the empty string is a valid
// operand whose distance to any word is that word's rune count.
//
// Use Distance for one-off comparisons. Word-by-word comparisons that score
// many pairs in a loop should hold a Calculator, which keeps its row buffers
// between calls instead of allocating a new grid per pair.
package levenshtein
