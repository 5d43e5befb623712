// Package compare aligns two token sequences position by position and scores
// each pair with the Levenshtein distance.
//
// Alignment is strictly positional: token i of the first text is paired with
// token i of the second, and the shorter sequence is padded with empty
// tokens. No attempt is made to realign around inserted or deleted words.
//
// Run is the entry point used by the CLI. It validates the raw texts, applies
// normalization from internal/textutil, and returns a Result. Validation is the
// only failure mode; everything after it is total.
package compare
