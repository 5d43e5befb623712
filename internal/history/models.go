package history

import (
	"time"

	"wordlev/internal/compare"
)

// Entry is one recorded comparison.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Text1     string    `json:"text1"`
	Text2     string    `json:"text2"`
	// Phrases are the phrase rules in the order they were applied.
	Phrases  []string       `json:"phrases"`
	FoldCase bool           `json:"fold_case"`
	Result   compare.Result `json:"result"`
}

// ShortID returns the first eight characters of the ID for display.
func (e *Entry) ShortID() string {
	if e == nil {
		return ""
	}
	if len(e.ID) > 8 {
		return e.ID[:8]
	}
	return e.ID
}
