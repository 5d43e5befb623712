package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"wordlev/internal/history"
	"wordlev/internal/report"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded comparisons",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryClearCommand(ctx))

	return historyCmd
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent comparisons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				entries, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(out, entries)
				}
				if len(entries) == 0 {
					fmt.Fprintln(out, "No comparisons recorded.")
					return nil
				}
				fmt.Fprintln(out, renderHistoryTable(entries))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum entries to show (0 = all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool
	var explain bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one recorded comparison (ID prefixes are accepted)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				entry, err := store.Get(cmd.Context(), args[0])
				if errors.Is(err, history.ErrNotFound) {
					return fmt.Errorf("no comparison with id %q", args[0])
				}
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if asJSON {
					return writeJSON(out, entry)
				}
				fmt.Fprintf(out, "ID:        %s\n", entry.ID)
				fmt.Fprintf(out, "When:      %s\n", entry.CreatedAt.Local().Format(time.DateTime))
				fmt.Fprintf(out, "First:     %s\n", entry.Text1)
				fmt.Fprintf(out, "Second:    %s\n", entry.Text2)
				if len(entry.Phrases) > 0 {
					fmt.Fprintf(out, "Phrases:   %s\n", strings.Join(entry.Phrases, ", "))
				}
				fmt.Fprintf(out, "Fold case: %t\n\n", entry.FoldCase)
				return report.Write(out, entry.Result, report.Options{
					Format:  report.FormatText,
					Explain: explain,
				})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the entry as JSON")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show character-level edits for each differing pair")
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded comparison",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(cmd.Context(), func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d comparison(s)\n", removed)
				return nil
			})
		},
	}
}
