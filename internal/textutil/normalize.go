package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// punctuationReplacer drops the sentence punctuation that never belongs to a word.
var punctuationReplacer = strings.NewReplacer(
	".", "",
	",", "",
	"!", "",
	"?", "",
	";", "",
	":", "",
)

// apostropheReplacer maps apostrophe look-alikes to U+0027.
var apostropheReplacer = strings.NewReplacer(
	"’", "'", // right single quotation mark
	"‘", "'", // left single quotation mark
	"ʼ", "'", // modifier letter apostrophe
	"′", "'", // prime
	"＇", "'", // fullwidth apostrophe
	"`", "'",
)

// Options controls optional normalization steps.
type Options struct {
	// Phrases are fused into single tokens before anything else runs.
	Phrases []PhraseRule
	// FoldCase lowercases the text and unifies apostrophes.
	FoldCase bool
}

// Normalize converts text into an ordered token sequence. When nothing but
// whitespace remains after punctuation stripping the result is a single empty
// token, so an empty text still occupies one aligned position.
func Normalize(text string, opts Options) []string {
	if len(opts.Phrases) > 0 {
		text = ApplyPhraseRules(text, opts.Phrases)
	}
	text = StripPunctuation(text)
	if opts.FoldCase {
		text = FoldCase(text)
	}
	return Tokenize(text)
}

// StripPunctuation removes . , ! ? ; and : from text. Other punctuation is kept.
func StripPunctuation(text string) string {
	return punctuationReplacer.Replace(text)
}

// FoldCase lowercases text and replaces apostrophe variants with '.
func FoldCase(text string) string {
	// Casers carry state; build one per call.
	lowered := cases.Lower(language.Und).String(text)
	return apostropheReplacer.Replace(lowered)
}

// Tokenize splits text on runs of whitespace.
func Tokenize(text string) []string {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return []string{""}
	}
	return tokens
}
