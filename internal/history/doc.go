// Package history persists completed comparisons in SQLite.
//
// Each comparison is stored with a UUID, its raw inputs, the options that
// shaped normalization, and the full result so `wordlev history show` can
// render it again without recomputing. Recording is optional: comparisons are
// only written when history is enabled in config and not disabled per
// invocation.
//
// Schema changes ship as numbered files under migrations/. Open applies any
// that are missing while holding a file lock, so concurrent CLI invocations do
// not race on a fresh database.
package history
