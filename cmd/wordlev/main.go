package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

const (
	exitFailure      = 1
	exitInvalidInput = 2
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode lets scripts tell rejected input apart from runtime failures.
func exitCode(err error) int {
	var kinded interface{ ErrorKind() string }
	if errors.As(err, &kinded) && kinded.ErrorKind() == "validation" {
		return exitInvalidInput
	}
	return exitFailure
}
