package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// PhraseRule is a sequence of words that normalization fuses into one token.
// A rule with no words is a no-op.
type PhraseRule struct {
	Words []string
}

// NewPhraseRule builds a rule from a phrase, splitting it on whitespace.
func NewPhraseRule(phrase string) PhraseRule {
	return PhraseRule{Words: strings.Fields(phrase)}
}

// ParsePhraseRules parses a comma-separated phrase list. Each element is
// trimmed; empty elements are kept as no-op rules so the result has one rule
// per element. A blank input yields no rules.
func ParsePhraseRules(raw string) []PhraseRule {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	rules := make([]PhraseRule, 0, len(parts))
	for _, part := range parts {
		rules = append(rules, NewPhraseRule(strings.TrimSpace(part)))
	}
	return rules
}

// PhraseRulesFromList builds rules from already separated phrases, as stored
// in configuration files.
func PhraseRulesFromList(phrases []string) []PhraseRule {
	if len(phrases) == 0 {
		return nil
	}
	rules := make([]PhraseRule, 0, len(phrases))
	for _, phrase := range phrases {
		rules = append(rules, NewPhraseRule(phrase))
	}
	return rules
}

// IsNoop reports whether the rule has nothing to match.
func (r PhraseRule) IsNoop() bool {
	return len(r.Words) == 0
}

// Fused returns the token a match is replaced with.
func (r PhraseRule) Fused() string {
	return strings.Join(r.Words, "")
}

// String returns the phrase with single spaces between words.
func (r PhraseRule) String() string {
	return strings.Join(r.Words, " ")
}

// Apply replaces every occurrence of the rule in text with its fused form.
// Words match case-insensitively and may be separated by any run of
// whitespace. Matches are not anchored to word boundaries and do not overlap;
// scanning resumes after each replacement.
func (r PhraseRule) Apply(text string) string {
	if r.IsNoop() || text == "" {
		return text
	}
	fused := r.Fused()

	var b strings.Builder
	b.Grow(len(text))
	rest := text
	for len(rest) > 0 {
		if n := r.matchPrefix(rest); n > 0 {
			b.WriteString(fused)
			rest = rest[n:]
			continue
		}
		_, size := utf8.DecodeRuneInString(rest)
		b.WriteString(rest[:size])
		rest = rest[size:]
	}
	return b.String()
}

// matchPrefix returns the byte length of the occurrence at the start of s, or
// zero when s does not start with the phrase.
func (r PhraseRule) matchPrefix(s string) int {
	pos := 0
	for i, word := range r.Words {
		if i > 0 {
			gap := leadingSpace(s[pos:])
			if gap == 0 {
				return 0
			}
			pos += gap
		}
		n, ok := foldPrefix(s[pos:], word)
		if !ok {
			return 0
		}
		pos += n
	}
	return pos
}

// ApplyPhraseRules applies rules to text in order.
func ApplyPhraseRules(text string, rules []PhraseRule) string {
	for _, rule := range rules {
		text = rule.Apply(text)
	}
	return text
}

func leadingSpace(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if !unicode.IsSpace(r) {
			break
		}
		n += size
	}
	return n
}

// foldPrefix reports whether s starts with word under simple case folding and
// returns the number of bytes of s consumed.
func foldPrefix(s, word string) (int, bool) {
	pos := 0
	for _, want := range word {
		if pos >= len(s) {
			return 0, false
		}
		got, size := utf8.DecodeRuneInString(s[pos:])
		if !foldEqual(got, want) {
			return 0, false
		}
		pos += size
	}
	return pos, true
}

func foldEqual(a, b rune) bool {
	if a == b {
		return true
	}
	for f := unicode.SimpleFold(a); f != a; f = unicode.SimpleFold(f) {
		if f == b {
			return true
		}
	}
	return false
}
