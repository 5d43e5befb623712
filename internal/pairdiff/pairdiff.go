// Package pairdiff explains a differing word pair as character edits.
//
// The Levenshtein score says how far apart two words are; the inline view
// produced here shows where. Deleted runs are wrapped as [-x-] and inserted
// runs as {+y+}, so "cat" against "bat" renders as "[-c-]{+b+}at".
package pairdiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op identifies the kind of a segment.
type Op int

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

// Segment is a run of characters sharing one edit operation.
type Segment struct {
	Op   Op
	Text string
}

// Style holds the markers written around deleted and inserted runs.
type Style struct {
	DeleteOpen  string
	DeleteClose string
	InsertOpen  string
	InsertClose string
}

// PlainStyle marks edits with ASCII brackets.
var PlainStyle = Style{
	DeleteOpen:  "[-",
	DeleteClose: "-]",
	InsertOpen:  "{+",
	InsertClose: "+}",
}

// ANSIStyle marks deletions in red and insertions in green.
var ANSIStyle = Style{
	DeleteOpen:  "\x1b[31m",
	DeleteClose: "\x1b[0m",
	InsertOpen:  "\x1b[32m",
	InsertClose: "\x1b[0m",
}

// Segments returns the character-level edits that turn first into second.
func Segments(first, second string) []Segment {
	if first == second {
		if first == "" {
			return nil
		}
		return []Segment{{Op: OpEqual, Text: first}}
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(first, second, false)

	segments := make([]Segment, 0, len(diffs))
	for _, d := range diffs {
		if d.Text == "" {
			continue
		}
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = OpDelete
		case diffmatchpatch.DiffInsert:
			op = OpInsert
		default:
			op = OpEqual
		}
		segments = append(segments, Segment{Op: op, Text: d.Text})
	}
	return segments
}

// Inline renders the edits between first and second on one line.
func Inline(first, second string, style Style) string {
	var b strings.Builder
	for _, seg := range Segments(first, second) {
		switch seg.Op {
		case OpDelete:
			b.WriteString(style.DeleteOpen)
			b.WriteString(seg.Text)
			b.WriteString(style.DeleteClose)
		case OpInsert:
			b.WriteString(style.InsertOpen)
			b.WriteString(seg.Text)
			b.WriteString(style.InsertClose)
		default:
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
