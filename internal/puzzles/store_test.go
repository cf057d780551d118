package puzzles

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/gfroidcourt/sudoku/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "puzzles.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveGet(t *testing.T) {
	store := newTestStore(t)

	p := core.Puzzle{
		ID:        "p-1",
		Size:      4,
		Rows:      []string{"1 2 _ _", "3 4 _ _", "_ _ 4 _", "_ _ _ 3"},
		Unique:    true,
		Seed:      42,
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := store.Get("p-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != p.ID || got.Size != p.Size || got.Unique != p.Unique || got.Seed != p.Seed {
		t.Errorf("Get = %+v, want %+v", got, p)
	}
	if len(got.Rows) != len(p.Rows) {
		t.Fatalf("Rows = %v, want %v", got.Rows, p.Rows)
	}
	for i := range p.Rows {
		if got.Rows[i] != p.Rows[i] {
			t.Errorf("row %d = %q, want %q", i, got.Rows[i], p.Rows[i])
		}
	}
	if !got.CreatedAt.Equal(p.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, p.CreatedAt)
	}
}

func TestGetMissing(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get("no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on a missing id = %v, want ErrNotFound", err)
	}
}

func TestSaveDuplicate(t *testing.T) {
	store := newTestStore(t)

	p := core.Puzzle{ID: "dup", Size: 4, Rows: []string{"_ _ _ _"}, CreatedAt: time.Now()}
	if err := store.Save(p); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Save(p); err == nil {
		t.Error("saving the same id twice must fail")
	}
}

func TestCount(t *testing.T) {
	store := newTestStore(t)

	if count, err := store.Count(); err != nil || count != 0 {
		t.Fatalf("Count on empty store = (%d, %v), want (0, nil)", count, err)
	}

	for i, id := range []string{"a", "b", "c"} {
		p := core.Puzzle{ID: id, Size: 4, Rows: []string{"_ _ _ _"}, Seed: int64(i), CreatedAt: time.Now()}
		if err := store.Save(p); err != nil {
			t.Fatalf("Save %s: %v", id, err)
		}
	}

	if count, err := store.Count(); err != nil || count != 3 {
		t.Errorf("Count = (%d, %v), want (3, nil)", count, err)
	}
}
