// Package textutil turns raw text into the word tokens that wordlev compares.
//
// Normalization runs in a fixed order:
//   - Phrase collapsing: caller-supplied multi-word phrases are fused into a
//     single token (case-insensitive, any run of whitespace between words)
//   - Punctuation stripping: only . , ! ? ; and : are removed
//   - Optional case folding, which also maps curly and modifier apostrophes
//     to a plain ASCII apostrophe
//   - Tokenization on runs of whitespace
//
// Phrase rules are applied one after another in the order given. A later rule
// sees the text produced by earlier ones, so overlapping rules can interact;
// callers control the outcome through ordering.
//
// Every function here is pure and total: no errors, no shared state.
package textutil
