package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveColor turns a color mode into a decision for writer. NO_COLOR
// disables auto mode.
func resolveColor(mode string, writer io.Writer) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case "", colorAuto:
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return shouldColorize(writer), nil
	default:
		return false, fmt.Errorf("unsupported color mode %q (want auto, always, or never)", mode)
	}
}
