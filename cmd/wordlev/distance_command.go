package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"wordlev/internal/levenshtein"
	"wordlev/internal/pairdiff"
)

func newDistanceCommand() *cobra.Command {
	var explain bool

	cmd := &cobra.Command{
		Use:         "distance A B",
		Short:       "Print the Levenshtein distance between two strings",
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, levenshtein.Distance(args[0], args[1]))
			if explain {
				fmt.Fprintln(out, pairdiff.Inline(args[0], args[1], pairdiff.PlainStyle))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&explain, "explain", false, "Also print the character-level edits")
	return cmd
}
