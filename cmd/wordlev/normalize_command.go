package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"wordlev/internal/textutil"
)

func newNormalizeCommand(ctx *commandContext) *cobra.Command {
	var phrases string
	var foldCase bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "normalize TEXT",
		Short: "Print the word tokens a text normalizes to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			opts := textutil.Options{
				Phrases:  textutil.PhraseRulesFromList(cfg.Comparison.Phrases),
				FoldCase: cfg.Comparison.FoldCase,
			}
			if cmd.Flags().Changed("phrases") {
				opts.Phrases = textutil.ParsePhraseRules(phrases)
			}
			if cmd.Flags().Changed("fold-case") {
				opts.FoldCase = foldCase
			}

			tokens := textutil.Normalize(args[0], opts)
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, tokens)
			}
			for i, token := range tokens {
				fmt.Fprintf(out, "%d\t%s\n", i, strconv.Quote(token))
			}
			if len(tokens) != 1 || strings.TrimSpace(tokens[0]) != "" {
				return nil
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "note: text normalized to a single empty word")
			return nil
		},
	}

	cmd.Flags().StringVar(&phrases, "phrases", "", "Comma-separated phrases to fuse into single words")
	cmd.Flags().BoolVar(&foldCase, "fold-case", false, "Lowercase and unify apostrophes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print tokens as a JSON array")
	return cmd
}
