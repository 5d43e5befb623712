package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wordlev/internal/compare"
	"wordlev/internal/config"
	"wordlev/internal/logging"
	"wordlev/internal/testsupport"
)

type cliTestEnv struct {
	cfg         *config.Config
	configPath  string
	historyPath string
	baseDir     string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("WORDLEV_HISTORY_PATH", "")
	t.Setenv("WORDLEV_LOG_LEVEL", "")
	t.Setenv("NO_COLOR", "")

	cfg := testsupport.NewConfig(t, opts...)
	configPath := filepath.Join(base, "config.toml")
	testsupport.WriteConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath, historyPath: cfg.History.Path, baseDir: base}
}

func (env *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", env.configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestCompareCommandText(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "compare", "The cat sat.", "The bat sat.")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	want := "Total Levenshtein Distance: 1\n" +
		"Words with differences:\n" +
		"  - \"cat\" → \"bat\" (distance: 1)\n"
	if out != want {
		t.Fatalf("output mismatch:\n got: %q\nwant: %q", out, want)
	}
}

func TestCompareCommandIdenticalTexts(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "compare", "--no-history", "Hello, world!", "Hello world")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "Total Levenshtein Distance: 0") || !strings.Contains(out, "No differing words found.") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCompareCommandRejectsEmptyInput(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "compare", "   ", "text")
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, compare.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if err.Error() != "Please enter text in both fields." {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if out != "" {
		t.Fatalf("expected no report, got %q", out)
	}
	if code := exitCode(err); code != exitInvalidInput {
		t.Fatalf("exitCode = %d, want %d", code, exitInvalidInput)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "validation", err: &compare.ValidationError{Fields: []string{"text1"}}, want: exitInvalidInput},
		{name: "wrapped validation", err: fmt.Errorf("compare: %w", &compare.ValidationError{}), want: exitInvalidInput},
		{name: "runtime", err: errors.New("open history: disk full"), want: exitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Fatalf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestCompareCommandFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "",
		"compare", "--no-history", "--format", "json", "--explain",
		"--fold-case", "--phrases", "machine learning",
		"Machine Learning is FUN", "machinelearning is fan",
	)
	if err != nil {
		t.Fatalf("compare: %v", err)
	}

	var payload struct {
		TotalDistance int `json:"total_distance"`
		Positions     int `json:"positions"`
		Differences   []struct {
			Index    int    `json:"index"`
			First    string `json:"first"`
			Second   string `json:"second"`
			Distance int    `json:"distance"`
		} `json:"differences"`
		Edits []string `json:"edits"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode json: %v\n%s", err, out)
	}
	if payload.TotalDistance != 1 || payload.Positions != 3 {
		t.Fatalf("unexpected totals: %+v", payload)
	}
	if len(payload.Differences) != 1 || payload.Differences[0].First != "fun" || payload.Differences[0].Second != "fan" || payload.Differences[0].Index != 2 {
		t.Fatalf("unexpected differences: %+v", payload.Differences)
	}
	if len(payload.Edits) != 1 || !strings.Contains(payload.Edits[0], "[-u-]") {
		t.Fatalf("unexpected edits: %v", payload.Edits)
	}
}

func TestCompareCommandReadsFiles(t *testing.T) {
	env := setupCLITestEnv(t)

	first := filepath.Join(env.baseDir, "first.txt")
	if err := os.WriteFile(first, []byte("one two three\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, _, err := env.run(t, "one too three\n", "compare", "--no-history", "--file1", first, "--file2", "-")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, `"two" → "too" (distance: 1)`) {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestCompareCommandTableFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "compare", "--no-history", "--format", "table", "a b", "b a")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	for _, want := range []string{"First", "Second", "Distance", "Total"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestHistoryCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := env.run(t, "", "compare", "The cat sat.", "The bat sat."); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if _, _, err := env.run(t, "", "compare", "hello", "hallo"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if _, _, err := env.run(t, "", "compare", "--no-history", "skip", "me"); err != nil {
		t.Fatalf("compare: %v", err)
	}
	if _, err := os.Stat(env.historyPath); err != nil {
		t.Fatalf("expected history database: %v", err)
	}

	out, _, err := env.run(t, "", "history", "list", "--json")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	var entries []struct {
		ID    string `json:"id"`
		Text1 string `json:"text1"`
	}
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("decode history: %v\n%s", err, out)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Text1 != "hello" {
		t.Fatalf("expected newest entry first, got %q", entries[0].Text1)
	}

	tableOut, _, err := env.run(t, "", "history", "list")
	if err != nil {
		t.Fatalf("history list table: %v", err)
	}
	for _, want := range []string{entries[1].ID[:8], "Total", "Diffs", "2 shown"} {
		if !strings.Contains(tableOut, want) {
			t.Fatalf("table missing %q:\n%s", want, tableOut)
		}
	}

	showOut, _, err := env.run(t, "", "history", "show", entries[1].ID[:8])
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	if !strings.Contains(showOut, "The cat sat.") || !strings.Contains(showOut, `"cat" → "bat" (distance: 1)`) {
		t.Fatalf("unexpected show output:\n%s", showOut)
	}

	if _, _, err := env.run(t, "", "history", "show", "does-not-exist"); err == nil {
		t.Fatal("expected error for unknown id")
	}

	clearOut, _, err := env.run(t, "", "history", "clear")
	if err != nil {
		t.Fatalf("history clear: %v", err)
	}
	if !strings.Contains(clearOut, "Removed 2") {
		t.Fatalf("unexpected clear output: %q", clearOut)
	}

	emptyOut, _, err := env.run(t, "", "history", "list")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if !strings.Contains(emptyOut, "No comparisons recorded.") {
		t.Fatalf("expected empty history, got %q", emptyOut)
	}
}

func TestNormalizeCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "normalize", "--json", "--fold-case", "--phrases", "new york", "I’m in New  York!")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	var tokens []string
	if err := json.Unmarshal([]byte(out), &tokens); err != nil {
		t.Fatalf("decode tokens: %v\n%s", err, out)
	}
	want := []string{"i'm", "in", "newyork"}
	if strings.Join(tokens, "|") != strings.Join(want, "|") {
		t.Fatalf("tokens = %q, want %q", tokens, want)
	}
}

func TestDistanceCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, "", "distance", "--explain", "kitten", "sitting")
	if err != nil {
		t.Fatalf("distance: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || lines[0] != "3" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(env.baseDir, "nested", "wordlev.toml")
	out, _, err := env.run(t, "", "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	if !strings.Contains(out, target) {
		t.Fatalf("unexpected init output: %q", out)
	}
	if _, _, err := env.run(t, "", "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config exists without --overwrite")
	}
	if _, _, err := env.run(t, "", "config", "init", "--path", target, "--overwrite"); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", target, "config", "validate"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("config validate: %v", err)
	}
	if !strings.Contains(stdout.String(), "Configuration valid") {
		t.Fatalf("unexpected validate output: %q", stdout.String())
	}
}

func TestConfigValidateRejectsBadConfig(t *testing.T) {
	env := setupCLITestEnv(t)

	if err := os.WriteFile(env.configPath, []byte("[output]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := env.run(t, "", "config", "validate"); err == nil {
		t.Fatal("expected validation failure")
	}
	if _, _, err := env.run(t, "", "compare", "a", "b"); err == nil {
		t.Fatal("expected compare to fail on invalid config")
	}
}

func TestCompareCommandUsesConfiguredPhrases(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory(), testsupport.WithPhrases("machine learning"))

	out, _, err := env.run(t, "", "compare", "machine learning is fun", "machinelearning is fun")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "Total Levenshtein Distance: 0") {
		t.Fatalf("expected configured phrase to apply, got %q", out)
	}
	if _, err := os.Stat(env.historyPath); !os.IsNotExist(err) {
		t.Fatalf("expected no history database when disabled, stat err = %v", err)
	}

	out, _, err = env.run(t, "", "compare", "--phrases", "", "machine learning is fun", "machinelearning is fun")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if strings.Contains(out, "Total Levenshtein Distance: 0") {
		t.Fatalf("expected --phrases to override config, got %q", out)
	}
}

func TestCompareCommandLogsToFile(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithLogFile("wordlev.log"), testsupport.WithLogLevel("info"))

	_, stderr, err := env.run(t, "", "compare", "hello", "hallo")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(stderr, "compare: comparison complete") {
		t.Fatalf("expected console log on stderr, got %q", stderr)
	}

	data, err := os.ReadFile(env.cfg.Logging.File)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("decode log record: %v (%q)", err, data)
	}
	if record["msg"] != "comparison complete" {
		t.Fatalf("unexpected record: %v", record)
	}
	if id, _ := record[logging.FieldComparisonID].(string); id == "" {
		t.Fatalf("expected comparison id in record: %v", record)
	}
	if record[logging.FieldTotalDistance] != float64(1) {
		t.Fatalf("unexpected total distance: %v", record)
	}
	if record["fold_case"] != false {
		t.Fatalf("expected fold_case=false: %v", record)
	}
	if _, ok := record["elapsed"].(float64); !ok {
		t.Fatalf("expected numeric elapsed duration: %v", record)
	}
}
