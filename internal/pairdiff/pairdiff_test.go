package pairdiff

import (
	"strings"
	"testing"
)

func TestInlinePlain(t *testing.T) {
	tests := []struct {
		name   string
		first  string
		second string
		want   string
	}{
		{"identical", "same", "same", "same"},
		{"both empty", "", "", ""},
		{"padding on second side", "hello", "", "[-hello-]"},
		{"padding on first side", "", "end", "{+end+}"},
		{"appended suffix", "sat", "sate", "sat{+e+}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Inline(tt.first, tt.second, PlainStyle)
			if got != tt.want {
				t.Errorf("Inline(%q, %q) = %q, want %q", tt.first, tt.second, got, tt.want)
			}
		})
	}
}

func TestSegmentsReconstructBothSides(t *testing.T) {
	pairs := [][2]string{
		{"cat", "bat"},
		{"kitten", "sitting"},
		{"Hello", "hello"},
		{"café", "cafe"},
		{"machinelearning", "learning"},
	}

	for _, pair := range pairs {
		var first, second strings.Builder
		for _, seg := range Segments(pair[0], pair[1]) {
			switch seg.Op {
			case OpEqual:
				first.WriteString(seg.Text)
				second.WriteString(seg.Text)
			case OpDelete:
				first.WriteString(seg.Text)
			case OpInsert:
				second.WriteString(seg.Text)
			}
		}
		if first.String() != pair[0] || second.String() != pair[1] {
			t.Errorf("segments for %q/%q rebuild %q/%q", pair[0], pair[1], first.String(), second.String())
		}
	}
}

func TestInlineANSI(t *testing.T) {
	got := Inline("", "x", ANSIStyle)
	if got != "\x1b[32mx\x1b[0m" {
		t.Errorf("Inline ANSI = %q", got)
	}
}
