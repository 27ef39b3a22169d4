package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/color-quest/internal/core"
	"github.com/vovakirdan/color-quest/internal/history"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreGetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	// Missing key
	_, ok, err := store.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if ok {
		t.Error("Get() on missing key should report ok=false")
	}

	if err := store.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	value, ok, err := store.Get(ctx, "k")
	if err != nil || !ok {
		t.Fatalf("Get() = %q, %v, %v", value, ok, err)
	}
	if value != "v2" {
		t.Errorf("Get() = %q, expected v2", value)
	}

	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "k"); ok {
		t.Error("key should be gone after Delete()")
	}

	// Deleting again is fine
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() of missing key failed: %v", err)
	}
}

func TestStoreEntries(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	store.Set(ctx, "colorGameHistory", "[]")
	store.Set(ctx, "colorGameHistory:bob", "[1]")
	store.Set(ctx, "other", "x")

	entries, err := store.Entries(ctx, "colorGameHistory")
	if err != nil {
		t.Fatalf("Entries() failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d keys, expected 2", len(entries))
	}
	for _, e := range entries {
		if !strings.HasPrefix(e.Key, "colorGameHistory") {
			t.Errorf("unexpected key %q", e.Key)
		}
		if e.UpdatedAt.IsZero() {
			t.Errorf("key %q has no update time", e.Key)
		}
	}
	if entries[1].Size != 3 {
		t.Errorf("size of %q = %d, expected 3", entries[1].Key, entries[1].Size)
	}
}

func TestStoreBacksHistory(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "scores.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	h := history.New(store)
	when := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	if _, err := h.Save(ctx, history.Record{PlayerName: "Alice", Level: core.LevelMedium, Score: 3, Date: when}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	store.Close()

	// Reopen: history must survive
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	records := history.New(store).Load(ctx)
	if len(records) != 1 {
		t.Fatalf("Load() returned %d records, expected 1", len(records))
	}
	if records[0].PlayerName != "Alice" || records[0].Score != 3 || !records[0].Date.Equal(when) {
		t.Errorf("Load() = %+v", records[0])
	}
}

func TestExpandHome(t *testing.T) {
	path, err := ExpandHome("/abs/path.db")
	if err != nil || path != "/abs/path.db" {
		t.Errorf("ExpandHome(abs) = %q, %v", path, err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	path, err = ExpandHome("~/.colorquest/scores.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if path != filepath.Join(home, ".colorquest", "scores.db") {
		t.Errorf("ExpandHome() = %q", path)
	}
}
