// Package main hosts the wordlev CLI entrypoint and command graph.
//
// The Cobra command tree accepts texts from arguments, files, or stdin, runs
// the word-by-word comparison from internal/compare, and renders the result
// through internal/report. It also centralizes configuration resolution,
// logger setup, and access to the optional history database so subcommands
// stay declarative.
//
// Add behaviour to the internal packages first and surface it here through
// flags or subcommands.
package main
