package history

import "errors"

var (
	// ErrNotFound is returned when no entry matches an ID.
	ErrNotFound = errors.New("history entry not found")
	// ErrAmbiguousID is returned when an ID prefix matches several entries.
	ErrAmbiguousID = errors.New("history id prefix is ambiguous")
	// ErrLocked is returned when another process holds the database lock too long.
	ErrLocked = errors.New("history database is locked by another process")
)
