// Package logging assembles the slog loggers used by wordlev.
//
// It owns the console and JSON handlers, parses level names from config, and
// exposes attribute helpers plus context plumbing so a comparison's ID can be
// attached to every line logged while it runs. Logs go to stderr by default;
// stdout is reserved for reports. A configured log file receives a JSON copy of
// every record.
//
// A no-op logger is available for tests and wiring code that cannot fail.
package logging
