package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/spf13/cobra"

	"wordlev/internal/levenshtein"
	"wordlev/internal/logging"
	"wordlev/internal/pairdiff"
	"wordlev/internal/report"
	"wordlev/internal/textutil"
)

var replSuggestions = []prompt.Suggest{
	{Text: "first", Description: "Set the first text"},
	{Text: "second", Description: "Set the second text"},
	{Text: "compare", Description: "Compare the current texts"},
	{Text: "cmp", Description: "Compare TEXT1 | TEXT2 in one line"},
	{Text: "phrases", Description: "Set comma-separated phrases (blank clears)"},
	{Text: "fold", Description: "Toggle case folding: on or off"},
	{Text: "explain", Description: "Toggle character edits: on or off"},
	{Text: "format", Description: "Set output format: text, table, or json"},
	{Text: "normalize", Description: "Show the tokens of a text"},
	{Text: "distance", Description: "Distance between two words"},
	{Text: "status", Description: "Show the current texts and options"},
	{Text: "help", Description: "Show commands"},
	{Text: "quit", Description: "Exit"},
}

func newReplCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Compare texts interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := settingsFromConfig(ctx.configValue())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			session := &replSession{
				cmdCtx:   ctx,
				runCtx:   cmd.Context(),
				out:      out,
				logger:   logging.NewComponentLogger(ctx.logger(cmd.ErrOrStderr()), "repl"),
				settings: settings,
			}

			fmt.Fprintln(out, "wordlev interactive comparison")
			session.printHelp()
			fmt.Fprintln(out)

			p := prompt.New(
				func(in string) { session.execute(in) },
				replCompleter,
				prompt.OptionPrefix("wordlev >> "),
				prompt.OptionTitle("wordlev"),
				prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
					return breakline && isQuitCommand(in)
				}),
			)
			p.Run()
			return nil
		},
	}
}

func replCompleter(d prompt.Document) []prompt.Suggest {
	before := d.TextBeforeCursor()
	if strings.ContainsAny(before, " \t") {
		return nil
	}
	return prompt.FilterHasPrefix(replSuggestions, d.GetWordBeforeCursor(), true)
}

func isQuitCommand(in string) bool {
	switch strings.TrimSpace(in) {
	case "quit", "exit":
		return true
	}
	return false
}

type replSession struct {
	cmdCtx *commandContext
	runCtx context.Context
	out    io.Writer
	logger *slog.Logger

	text1    string
	text2    string
	settings comparisonSettings
}

// execute runs one line of input. It reports false once the session should
// end.
func (r *replSession) execute(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return true
	}
	name, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "first", "a":
		r.text1 = rest
	case "second", "b":
		r.text2 = rest
	case "compare", "run":
		r.compare()
	case "cmp":
		first, second, ok := strings.Cut(rest, "|")
		if !ok {
			fmt.Fprintln(r.out, "Usage: cmp TEXT1 | TEXT2")
			return true
		}
		r.text1 = strings.TrimSpace(first)
		r.text2 = strings.TrimSpace(second)
		r.compare()
	case "phrases":
		r.settings.Phrases = textutil.ParsePhraseRules(rest)
	case "fold":
		r.setToggle(&r.settings.FoldCase, "fold", rest)
	case "explain":
		r.setToggle(&r.settings.Explain, "explain", rest)
	case "format":
		format, err := report.ParseFormat(rest)
		if err != nil {
			fmt.Fprintf(r.out, "Error: %v\n", err)
			return true
		}
		r.settings.Format = format
	case "normalize":
		tokens := textutil.Normalize(rest, textutil.Options{
			Phrases:  r.settings.Phrases,
			FoldCase: r.settings.FoldCase,
		})
		fmt.Fprintf(r.out, "%q\n", tokens)
	case "distance":
		words := strings.Fields(rest)
		if len(words) != 2 {
			fmt.Fprintln(r.out, "Usage: distance WORD1 WORD2")
			return true
		}
		fmt.Fprintf(r.out, "%d  %s\n", levenshtein.Distance(words[0], words[1]), pairdiff.Inline(words[0], words[1], pairdiff.PlainStyle))
	case "status":
		r.printStatus()
	case "help":
		r.printHelp()
	case "quit", "exit":
		return false
	default:
		fmt.Fprintf(r.out, "Unknown command: %s\n", name)
	}
	return true
}

func (r *replSession) compare() {
	if _, err := r.cmdCtx.runComparison(r.runCtx, r.out, r.logger, r.text1, r.text2, r.settings); err != nil {
		fmt.Fprintln(r.out, err)
	}
}

func (r *replSession) setToggle(target *bool, name, value string) {
	switch strings.ToLower(value) {
	case "on", "true", "yes":
		*target = true
	case "off", "false", "no":
		*target = false
	case "":
		*target = !*target
	default:
		fmt.Fprintf(r.out, "Usage: %s on|off\n", name)
		return
	}
	fmt.Fprintf(r.out, "%s: %s\n", name, onOff(*target))
}

func (r *replSession) printStatus() {
	fmt.Fprintf(r.out, "first:   %q\n", r.text1)
	fmt.Fprintf(r.out, "second:  %q\n", r.text2)
	fmt.Fprintf(r.out, "phrases: %s\n", strings.Join(phraseStrings(r.settings.Phrases), ", "))
	fmt.Fprintf(r.out, "fold:    %s\n", onOff(r.settings.FoldCase))
	fmt.Fprintf(r.out, "explain: %s\n", onOff(r.settings.Explain))
	fmt.Fprintf(r.out, "format:  %s\n", r.settings.Format)
}

func (r *replSession) printHelp() {
	fmt.Fprintln(r.out, "Commands:")
	fmt.Fprintln(r.out, "  first <text>          - Set the first text")
	fmt.Fprintln(r.out, "  second <text>         - Set the second text")
	fmt.Fprintln(r.out, "  compare               - Compare the current texts")
	fmt.Fprintln(r.out, "  cmp <text1> | <text2> - Set both texts and compare")
	fmt.Fprintln(r.out, "  phrases <a b, c d>    - Phrases compared as one word (blank clears)")
	fmt.Fprintln(r.out, "  fold on|off           - Ignore case and apostrophe variants")
	fmt.Fprintln(r.out, "  explain on|off        - Show character-level edits")
	fmt.Fprintln(r.out, "  format text|table|json")
	fmt.Fprintln(r.out, "  normalize <text>      - Show the tokens of a text")
	fmt.Fprintln(r.out, "  distance <w1> <w2>    - Distance between two words")
	fmt.Fprintln(r.out, "  status                - Show the current texts and options")
	fmt.Fprintln(r.out, "  help                  - Show this help")
	fmt.Fprintln(r.out, "  quit                  - Exit")
}

func onOff(value bool) string {
	if value {
		return "on"
	}
	return "off"
}
