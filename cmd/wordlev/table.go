package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"wordlev/internal/history"
)

const historyPreviewWidth = 32

// renderHistoryTable lists entries newest first with numeric columns right
// aligned and both texts flattened to one line.
func renderHistoryTable(entries []*history.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.Style().Format.Footer = text.FormatDefault

	tw.AppendHeader(table.Row{"ID", "When", "Total", "Diffs", "First", "Second"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{
			entry.ShortID(),
			entry.CreatedAt.Local().Format(time.DateTime),
			strconv.Itoa(entry.Result.TotalDistance),
			strconv.Itoa(len(entry.Result.Differences)),
			preview(entry.Text1),
			preview(entry.Text2),
		})
	}
	tw.AppendFooter(table.Row{"", fmt.Sprintf("%d shown", len(entries))})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Total", Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Name: "Diffs", Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// preview flattens whitespace and truncates text for table cells.
func preview(value string) string {
	flat := strings.Join(strings.Fields(value), " ")
	runes := []rune(flat)
	if len(runes) <= historyPreviewWidth {
		return flat
	}
	return string(runes[:historyPreviewWidth-1]) + "…"
}
