package history_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"wordlev/internal/compare"
	"wordlev/internal/history"
	"wordlev/internal/testsupport"
)

func openTestStore(t *testing.T) *history.Store {
	t.Helper()
	return testsupport.MustOpenHistory(t, testsupport.NewConfig(t))
}

func TestRecordAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	result, err := compare.Run("The cat sat.", "The bat sat.", "", false)
	if err != nil {
		t.Fatalf("compare.Run: %v", err)
	}

	recorded, err := store.Record(ctx, history.Entry{
		Text1:    "The cat sat.",
		Text2:    "The bat sat.",
		Phrases:  []string{"machine learning"},
		FoldCase: true,
		Result:   result,
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if recorded.ID == "" || recorded.CreatedAt.IsZero() {
		t.Fatalf("expected ID and timestamp to be assigned, got %+v", recorded)
	}

	fetched, err := store.Get(ctx, recorded.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if fetched.Text1 != "The cat sat." || fetched.Text2 != "The bat sat." {
		t.Fatalf("unexpected texts: %+v", fetched)
	}
	if !fetched.FoldCase {
		t.Fatal("expected fold case to round-trip")
	}
	if !reflect.DeepEqual(fetched.Phrases, []string{"machine learning"}) {
		t.Fatalf("unexpected phrases %v", fetched.Phrases)
	}
	if !reflect.DeepEqual(fetched.Result, result) {
		t.Fatalf("result mismatch: got %+v want %+v", fetched.Result, result)
	}
	if !fetched.CreatedAt.Equal(recorded.CreatedAt) {
		t.Fatalf("timestamp mismatch: %v vs %v", fetched.CreatedAt, recorded.CreatedAt)
	}

	byPrefix, err := store.Get(ctx, recorded.ShortID())
	if err != nil {
		t.Fatalf("Get by prefix: %v", err)
	}
	if byPrefix.ID != recorded.ID {
		t.Fatalf("prefix lookup returned %s, want %s", byPrefix.ID, recorded.ID)
	}
}

func TestGetMissing(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Get(context.Background(), "does-not-exist")
	if !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := store.Get(context.Background(), "  "); !errors.Is(err, history.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for blank id, got %v", err)
	}
}

func TestListNewestFirstAndClear(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	var ids []string
	for _, text := range []string{"one", "two", "three"} {
		entry, err := store.Record(ctx, history.Entry{
			Text1:  text,
			Text2:  text,
			Result: compare.Compare([]string{text}, []string{text}),
		})
		if err != nil {
			t.Fatalf("Record %s: %v", text, err)
		}
		ids = append(ids, entry.ID)
	}

	all, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(all))
	}
	if all[0].ID != ids[2] || all[2].ID != ids[0] {
		t.Fatalf("entries not newest first: %s, %s, %s", all[0].ID, all[1].ID, all[2].ID)
	}
	if all[0].Result.Differences == nil {
		t.Fatal("expected empty differences slice, got nil")
	}

	limited, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(limited))
	}

	count, err := store.Count(ctx)
	if err != nil || count != 3 {
		t.Fatalf("Count = %d, %v", count, err)
	}

	removed, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
	if count, _ := store.Count(ctx); count != 0 {
		t.Fatalf("expected empty store after clear, got %d", count)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	first, err := history.Open(ctx, path)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	if _, err := first.Record(ctx, history.Entry{Text1: "a", Text2: "b", Result: compare.Compare([]string{"a"}, []string{"b"})}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := history.Open(ctx, path)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Close()
	if count, err := second.Count(ctx); err != nil || count != 1 {
		t.Fatalf("expected 1 entry after reopen, got %d (%v)", count, err)
	}
	if second.Path() != path {
		t.Fatalf("Path() = %q, want %q", second.Path(), path)
	}
	version, err := second.SchemaVersion(ctx)
	if err != nil {
		t.Fatalf("SchemaVersion: %v", err)
	}
	if version != "001_comparisons" {
		t.Fatalf("SchemaVersion = %q, want 001_comparisons", version)
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := history.Open(context.Background(), " "); err == nil {
		t.Fatal("expected error for empty path")
	}
}
