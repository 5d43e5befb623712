package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"wordlev/internal/compare"
)

const (
	entryColumns    = "id, created_at, text1, text2, phrases_json, fold_case, total_distance, positions, differences_json"
	lockRetryDelay  = 50 * time.Millisecond
	lockTimeout     = 5 * time.Second
	timestampLayout = "2006-01-02T15:04:05.000000000Z07:00" // fixed width so text order is time order
)

// Store manages comparison history backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database at path and applies
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("history path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path}
	if err := store.migrateLocked(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *Store) migrateLocked(ctx context.Context) error {
	lock := flock.New(s.path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	ok, err := lock.TryLockContext(lockCtx, lockRetryDelay)
	if err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	if !ok {
		return ErrLocked
	}
	defer func() { _ = lock.Unlock() }()

	return s.applyMigrations(ctx)
}

// Path returns the database file location.
func (s *Store) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record stores a comparison and returns it with its assigned ID and timestamp.
func (s *Store) Record(ctx context.Context, entry Entry) (*Entry, error) {
	entry.ID = uuid.NewString()
	entry.CreatedAt = time.Now().UTC()

	phrasesJSON, err := json.Marshal(entry.Phrases)
	if err != nil {
		return nil, fmt.Errorf("marshal phrases: %w", err)
	}
	differences := entry.Result.Differences
	if differences == nil {
		differences = []compare.WordPair{}
	}
	differencesJSON, err := json.Marshal(differences)
	if err != nil {
		return nil, fmt.Errorf("marshal differences: %w", err)
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO comparisons (`+entryColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.CreatedAt.Format(timestampLayout),
		entry.Text1,
		entry.Text2,
		string(phrasesJSON),
		boolToInt(entry.FoldCase),
		entry.Result.TotalDistance,
		entry.Result.Positions,
		string(differencesJSON),
	)
	if err != nil {
		return nil, fmt.Errorf("insert comparison: %w", err)
	}
	return &entry, nil
}

// List returns the most recent entries, newest first. A limit of zero or less
// returns every entry.
func (s *Store) List(ctx context.Context, limit int) ([]*Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM comparisons ORDER BY created_at DESC, rowid DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list comparisons: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparisons: %w", err)
	}
	return entries, nil
}

// Get fetches an entry by full ID or unique ID prefix.
func (s *Store) Get(ctx context.Context, id string) (*Entry, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrNotFound
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+entryColumns+` FROM comparisons WHERE substr(id, 1, ?) = ? LIMIT 2`,
		len(id),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("get comparison: %w", err)
	}
	defer rows.Close()

	var found []*Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan comparison: %w", err)
		}
		found = append(found, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comparisons: %w", err)
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrAmbiguousID, id)
	}
}

// Count returns the number of stored entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM comparisons`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count comparisons: %w", err)
	}
	return count, nil
}

// Clear removes every entry and returns how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM comparisons`)
	if err != nil {
		return 0, fmt.Errorf("clear comparisons: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return n, nil
}

func scanEntry(scanner interface{ Scan(dest ...any) error }) (*Entry, error) {
	var (
		id              string
		createdRaw      string
		text1           string
		text2           string
		phrasesRaw      sql.NullString
		foldCase        int64
		totalDistance   int
		positions       int
		differencesJSON string
	)
	if err := scanner.Scan(
		&id,
		&createdRaw,
		&text1,
		&text2,
		&phrasesRaw,
		&foldCase,
		&totalDistance,
		&positions,
		&differencesJSON,
	); err != nil {
		return nil, err
	}

	entry := &Entry{
		ID:       id,
		Text1:    text1,
		Text2:    text2,
		FoldCase: foldCase != 0,
		Result: compare.Result{
			TotalDistance: totalDistance,
			Positions:     positions,
		},
	}
	if ts, err := time.Parse(timestampLayout, createdRaw); err == nil {
		entry.CreatedAt = ts
	}
	if phrasesRaw.Valid && phrasesRaw.String != "" && phrasesRaw.String != "null" {
		if err := json.Unmarshal([]byte(phrasesRaw.String), &entry.Phrases); err != nil {
			return nil, fmt.Errorf("decode phrases: %w", err)
		}
	}
	if err := json.Unmarshal([]byte(differencesJSON), &entry.Result.Differences); err != nil {
		return nil, fmt.Errorf("decode differences: %w", err)
	}
	if entry.Result.Differences == nil {
		entry.Result.Differences = []compare.WordPair{}
	}
	return entry, nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
