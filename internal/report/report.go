package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordlev/internal/compare"
	"wordlev/internal/pairdiff"
)

// Format selects how a result is written.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

const (
	ansiBlue  = "\033[34m"
	ansiReset = "\033[0m"
)

// ParseFormat validates a format name. Blank selects FormatText.
func ParseFormat(value string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(value))) {
	case "", FormatText:
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text, table, or json)", value)
	}
}

// Options controls rendering.
type Options struct {
	Format Format
	// Explain adds the character-level edits for each differing pair.
	Explain bool
	// Color enables ANSI escapes in text and table output.
	Color bool
}

// Write renders result to w.
func Write(w io.Writer, result compare.Result, opts Options) error {
	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, result, opts)
	case FormatTable:
		_, err := io.WriteString(w, renderTable(result, opts)+"\n")
		return err
	default:
		_, err := io.WriteString(w, renderText(result, opts))
		return err
	}
}

func renderText(result compare.Result, opts Options) string {
	var b strings.Builder
	total := fmt.Sprintf("Total Levenshtein Distance: %d", result.TotalDistance)
	if opts.Color {
		total = ansiBlue + total + ansiReset
	}
	b.WriteString(total)
	b.WriteByte('\n')

	if len(result.Differences) == 0 {
		b.WriteString("No differing words found.\n")
		return b.String()
	}

	b.WriteString("Words with differences:\n")
	for _, pair := range result.Differences {
		fmt.Fprintf(&b, "  - %s", PairLine(pair))
		if opts.Explain {
			b.WriteString("  ")
			b.WriteString(pairdiff.Inline(pair.First, pair.Second, explainStyle(opts)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PairLine formats a differing pair as `"first" → "second" (distance: d)`.
func PairLine(pair compare.WordPair) string {
	return fmt.Sprintf("\"%s\" → \"%s\" (distance: %d)", pair.First, pair.Second, pair.Distance)
}

func renderTable(result compare.Result, opts Options) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	header := table.Row{"#", "First", "Second", "Distance"}
	if opts.Explain {
		header = append(header, "Edits")
	}
	tw.AppendHeader(header)

	for _, pair := range result.Differences {
		row := table.Row{
			strconv.Itoa(pair.Index + 1),
			pair.First,
			pair.Second,
			strconv.Itoa(pair.Distance),
		}
		if opts.Explain {
			row = append(row, pairdiff.Inline(pair.First, pair.Second, explainStyle(opts)))
		}
		tw.AppendRow(row)
	}

	footer := table.Row{"", "", "Total", strconv.Itoa(result.TotalDistance)}
	if opts.Explain {
		footer = append(footer, "")
	}
	tw.AppendFooter(footer)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft, AlignFooter: text.AlignRight},
	})

	rendered := tw.Render()
	if len(result.Differences) == 0 {
		rendered += "\nNo differing words found."
	}
	return rendered
}

type jsonReport struct {
	compare.Result
	Edits []string `json:"edits,omitempty"`
}

func writeJSON(w io.Writer, result compare.Result, opts Options) error {
	payload := jsonReport{Result: result}
	if opts.Explain {
		payload.Edits = make([]string, 0, len(result.Differences))
		for _, pair := range result.Differences {
			payload.Edits = append(payload.Edits, pairdiff.Inline(pair.First, pair.Second, pairdiff.PlainStyle))
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func explainStyle(opts Options) pairdiff.Style {
	if opts.Color {
		return pairdiff.ANSIStyle
	}
	return pairdiff.PlainStyle
}
