package compare

import (
	"strings"

	"wordlev/internal/textutil"
)

// Request carries the raw inputs of one comparison.
type Request struct {
	Text1    string
	Text2    string
	Phrases  []textutil.PhraseRule
	FoldCase bool
}

// Run compares two raw texts. phrasesRaw is a comma-separated phrase list;
// foldCase enables case and apostrophe folding. A *ValidationError is returned
// when either text is empty after trimming.
func Run(text1, text2, phrasesRaw string, foldCase bool) (Result, error) {
	return Comparer{}.Run(Request{
		Text1:    text1,
		Text2:    text2,
		Phrases:  textutil.ParsePhraseRules(phrasesRaw),
		FoldCase: foldCase,
	})
}

// Run validates req, normalizes both texts, and compares the tokens.
func (c Comparer) Run(req Request) (Result, error) {
	text1 := strings.TrimSpace(req.Text1)
	text2 := strings.TrimSpace(req.Text2)
	if err := validate(text1, text2); err != nil {
		return Result{}, err
	}

	opts := textutil.Options{Phrases: req.Phrases, FoldCase: req.FoldCase}
	tokens1 := textutil.Normalize(text1, opts)
	tokens2 := textutil.Normalize(text2, opts)
	return c.Compare(tokens1, tokens2), nil
}

func validate(text1, text2 string) error {
	var missing []string
	if text1 == "" {
		missing = append(missing, "text1")
	}
	if text2 == "" {
		missing = append(missing, "text2")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// RunWithOptions is Run for callers that already hold parsed phrase rules.
func RunWithOptions(req Request) (Result, error) {
	return Comparer{}.Run(req)
}
