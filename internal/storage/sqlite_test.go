package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(Run{Mode: "standard", Seed: 42, Ticks: 600, Pieces: 30, Lines: 8, GameOver: true})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("SaveRun() id %q is not a UUID: %v", id, err)
	}

	got, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if got == nil {
		t.Fatal("RunByID() returned nil for a saved run")
	}
	if got.Mode != "standard" || got.Seed != 42 || got.Ticks != 600 || got.Pieces != 30 || got.Lines != 8 || !got.GameOver {
		t.Errorf("RunByID() = %+v", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil || missing != nil {
		t.Errorf("RunByID(unknown) = %v, %v; expected nil, nil", missing, err)
	}
}

func TestStoreSaveRunKeepsGivenID(t *testing.T) {
	store := openTestStore(t)
	want := uuid.NewString()

	id, err := store.SaveRun(Run{ID: want, Mode: "bar"})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id != want {
		t.Errorf("SaveRun() id = %q, expected %q", id, want)
	}

	if _, err := store.SaveRun(Run{ID: want, Mode: "bar"}); err == nil {
		t.Error("saving a duplicate id should fail")
	}
	if _, err := store.SaveRun(Run{ID: "not-a-uuid", Mode: "bar"}); err == nil {
		t.Error("saving a malformed id should fail")
	}
}

func TestStoreBestRuns(t *testing.T) {
	store := openTestStore(t)

	for _, lines := range []int{3, 12, 7, 0, 9} {
		if _, err := store.SaveRun(Run{Mode: "standard", Lines: lines}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	store.SaveRun(Run{Mode: "classic", Lines: 100})

	best, err := store.BestRuns("standard", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(best))
	}
	if best[0].Lines != 12 || best[1].Lines != 9 || best[2].Lines != 7 {
		t.Errorf("Runs not in expected order: %v", best)
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(Run{Mode: "bar", Seed: int64(i)})
	}

	recent, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("Expected 2 recent runs, got %d", len(recent))
	}
	if recent[0].Seed != 4 || recent[1].Seed != 3 {
		t.Errorf("Expected newest first, got seeds %d, %d", recent[0].Seed, recent[1].Seed)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Mode: "standard", Lines: 1})
	store.SaveRun(Run{Mode: "classic", Lines: 2})

	if err := store.ClearRuns("standard"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	standard, _ := store.BestRuns("standard", 10)
	if len(standard) != 0 {
		t.Errorf("Expected 0 standard runs after clear, got %d", len(standard))
	}
	classic, _ := store.BestRuns("classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic runs should not be affected by clearing standard")
	}
}

func TestStoreModeStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{Mode: "standard", Lines: 4})
	store.SaveRun(Run{Mode: "standard", Lines: 8})
	store.SaveRun(Run{Mode: "bar", Lines: 1})

	stats, err := store.AllModeStats()
	if err != nil {
		t.Fatalf("AllModeStats() failed: %v", err)
	}
	std := stats["standard"]
	if std == nil {
		t.Fatal("missing standard stats")
	}
	if std.RunsCount != 2 || std.BestLines != 8 || std.AvgLines != 6 || std.TotalLines != 12 {
		t.Errorf("standard stats = %+v", std)
	}
	if stats["bar"] == nil || stats["bar"].RunsCount != 1 {
		t.Errorf("bar stats = %+v", stats["bar"])
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
