// Package config loads, normalizes, and validates wordlev configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours environment overrides such as WORDLEV_HISTORY_PATH.
// The Config type holds the default comparison options, output preferences,
// history storage, and logging settings so the CLI resolves them in one pass.
//
// Command-line flags override these values; the config file only supplies
// defaults.
package config
