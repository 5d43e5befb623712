package main

import (
	"github.com/spf13/cobra"

	"wordlev/internal/logging"
	"wordlev/internal/report"
	"wordlev/internal/textutil"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var file1, file2 string
	var phrases string
	var foldCase bool
	var format string
	var explain bool
	var colorMode string
	var noHistory bool
	var workers int

	cmd := &cobra.Command{
		Use:   "compare [TEXT1 TEXT2]",
		Short: "Compare two texts word by word",
		Long: "Compare two texts word by word.\n\n" +
			"Words are paired by position after normalization; each pair is scored\n" +
			"with the Levenshtein distance and the scores are summed. Texts come from\n" +
			"arguments, or from files with --file1/--file2 (\"-\" reads stdin).",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			settings, err := settingsFromConfig(cfg)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("phrases") {
				settings.Phrases = textutil.ParsePhraseRules(phrases)
			}
			if flags.Changed("fold-case") {
				settings.FoldCase = foldCase
			}
			if flags.Changed("format") {
				if settings.Format, err = report.ParseFormat(format); err != nil {
					return err
				}
			}
			if flags.Changed("explain") {
				settings.Explain = explain
			}
			if flags.Changed("color") {
				settings.ColorMode = colorMode
			}
			if flags.Changed("workers") {
				settings.Workers = workers
			}
			if noHistory {
				settings.Record = false
			}

			text1, text2, err := resolveTexts(args, file1, file2, cmd.InOrStdin())
			if err != nil {
				return err
			}

			logger := logging.NewComponentLogger(ctx.logger(cmd.ErrOrStderr()), "compare")
			_, err = ctx.runComparison(cmd.Context(), cmd.OutOrStdout(), logger, text1, text2, settings)
			return err
		},
	}

	cmd.Flags().StringVar(&file1, "file1", "", "Read the first text from a file (\"-\" for stdin)")
	cmd.Flags().StringVar(&file2, "file2", "", "Read the second text from a file (\"-\" for stdin)")
	cmd.Flags().StringVar(&phrases, "phrases", "", "Comma-separated phrases to compare as single words")
	cmd.Flags().BoolVar(&foldCase, "fold-case", false, "Ignore case and apostrophe variants")
	cmd.Flags().StringVar(&format, "format", "", "Output format: text, table, or json")
	cmd.Flags().BoolVar(&explain, "explain", false, "Show character-level edits for each differing pair")
	cmd.Flags().StringVar(&colorMode, "color", "", "Color output: auto, always, or never")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this comparison")
	cmd.Flags().IntVar(&workers, "workers", 0, "Concurrent scorers for long texts (-1 = all CPUs)")
	return cmd
}
