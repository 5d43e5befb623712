package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"wordlev/internal/compare"
	"wordlev/internal/config"
	"wordlev/internal/history"
	"wordlev/internal/logging"
	"wordlev/internal/report"
	"wordlev/internal/textutil"
)

// comparisonSettings holds the options of one comparison after config
// defaults and flags have been merged.
type comparisonSettings struct {
	Phrases   []textutil.PhraseRule
	FoldCase  bool
	Workers   int
	Format    report.Format
	Explain   bool
	ColorMode string
	Record    bool
}

func settingsFromConfig(cfg *config.Config) (comparisonSettings, error) {
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return comparisonSettings{}, err
	}
	return comparisonSettings{
		Phrases:   textutil.PhraseRulesFromList(cfg.Comparison.Phrases),
		FoldCase:  cfg.Comparison.FoldCase,
		Workers:   cfg.Comparison.Workers,
		Format:    format,
		Explain:   cfg.Output.Explain,
		ColorMode: cfg.Output.Color,
		Record:    cfg.History.Enabled,
	}, nil
}

func phraseStrings(rules []textutil.PhraseRule) []string {
	if len(rules) == 0 {
		return nil
	}
	out := make([]string, 0, len(rules))
	for _, rule := range rules {
		out = append(out, rule.String())
	}
	return out
}

// runComparison compares the texts, writes the report to out, and records
// the comparison when history is enabled. History failures are logged and do
// not fail the comparison.
func (c *commandContext) runComparison(ctx context.Context, out io.Writer, logger *slog.Logger, text1, text2 string, settings comparisonSettings) (compare.Result, error) {
	started := time.Now()
	comparer := compare.Comparer{Workers: settings.Workers}
	result, err := comparer.Run(compare.Request{
		Text1:    text1,
		Text2:    text2,
		Phrases:  settings.Phrases,
		FoldCase: settings.FoldCase,
	})
	if err != nil {
		return compare.Result{}, err
	}

	color := false
	if settings.Format != report.FormatJSON {
		color, err = resolveColor(settings.ColorMode, out)
		if err != nil {
			return compare.Result{}, err
		}
	}
	if err := report.Write(out, result, report.Options{
		Format:  settings.Format,
		Explain: settings.Explain,
		Color:   color,
	}); err != nil {
		return compare.Result{}, err
	}

	if settings.Record {
		entry, err := c.recordHistory(ctx, history.Entry{
			Text1:    text1,
			Text2:    text2,
			Phrases:  phraseStrings(settings.Phrases),
			FoldCase: settings.FoldCase,
			Result:   result,
		})
		if err != nil {
			logger.Warn("history record failed", logging.Error(err))
		} else {
			ctx = logging.WithComparisonID(ctx, entry.ID)
		}
	}

	logging.WithContext(ctx, logger).Info(
		"comparison complete",
		logging.Args(
			logging.Int(logging.FieldTotalDistance, result.TotalDistance),
			logging.Int(logging.FieldPositions, result.Positions),
			logging.Int("differences", len(result.Differences)),
			logging.Bool("fold_case", settings.FoldCase),
			logging.Duration("elapsed", time.Since(started)),
		)...,
	)
	return result, nil
}

func (c *commandContext) recordHistory(ctx context.Context, entry history.Entry) (*history.Entry, error) {
	var recorded *history.Entry
	err := c.withHistory(ctx, func(store *history.Store) error {
		var err error
		recorded, err = store.Record(ctx, entry)
		return err
	})
	return recorded, err
}
