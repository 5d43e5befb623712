package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"wordlev/internal/config"
)

const stdinPath = "-"

// resolveTexts picks the two texts from --file1/--file2 or positional args.
// A file flag takes the place of the matching positional argument.
func resolveTexts(args []string, file1, file2 string, stdin io.Reader) (string, string, error) {
	if strings.TrimSpace(file1) == stdinPath && strings.TrimSpace(file2) == stdinPath {
		return "", "", errors.New("only one of --file1 and --file2 may read from stdin")
	}

	positional := args
	next := func(path string) (string, error) {
		if strings.TrimSpace(path) != "" {
			return readText(path, stdin)
		}
		if len(positional) == 0 {
			return "", nil
		}
		value := positional[0]
		positional = positional[1:]
		return value, nil
	}

	text1, err := next(file1)
	if err != nil {
		return "", "", err
	}
	text2, err := next(file2)
	if err != nil {
		return "", "", err
	}
	if len(positional) > 0 {
		return "", "", fmt.Errorf("unexpected argument %q", positional[0])
	}
	return text1, text2, nil
}

func readText(path string, stdin io.Reader) (string, error) {
	path = strings.TrimSpace(path)
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	expanded, err := config.ExpandPath(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}
