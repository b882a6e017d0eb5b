package storage

import (
	"os"
	"path/filepath"
	"sync"
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

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreReopenKeepsRuns(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{GameID: "bounce", Score: 12}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("bounce")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 12 {
		t.Errorf("Expected 12 after reopen, got %d", high)
	}
}

func TestStoreSaveAndTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{GameID: "bounce", Score: 100, Ticks: 3000},
		{GameID: "bounce", Score: 50, Ticks: 1200},
		{GameID: "bounce", Score: 200, Ticks: 6000, NewHigh: true},
		{GameID: "bounce_classic", Score: 500, Ticks: 9000},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("bounce", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	wantScores := []int{200, 100, 50}
	for i, want := range wantScores {
		if runs[i].Score != want {
			t.Errorf("Run %d: expected score %d, got %d", i, want, runs[i].Score)
		}
	}

	if !runs[0].NewHigh || runs[1].NewHigh {
		t.Error("NewHigh flag was not stored")
	}
	if runs[0].Ticks != 6000 {
		t.Errorf("Expected 6000 ticks, got %d", runs[0].Ticks)
	}
	if _, err := uuid.Parse(runs[0].RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", runs[0].RunID, err)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 30 {
		if _, err := store.SaveRun(Run{GameID: "bounce", Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	tests := []struct {
		limit int
		want  int
	}{
		{5, 5},
		{0, 10}, // Default
		{100, 30},
	}

	for _, tt := range tests {
		runs, err := store.TopRuns("bounce", tt.limit)
		if err != nil {
			t.Fatalf("TopRuns(%d) failed: %v", tt.limit, err)
		}
		if len(runs) != tt.want {
			t.Errorf("TopRuns(%d) returned %d runs, want %d", tt.limit, len(runs), tt.want)
		}
	}
}

func TestStoreRecentRuns(t *testing.T) {
	store := openTestStore(t)

	for i, game := range []string{"bounce", "bounce_classic", "bounce"} {
		if _, err := store.SaveRun(Run{GameID: game, Score: i}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}

	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs, got %d", len(runs))
	}
	if runs[0].Score != 2 || runs[1].Score != 1 {
		t.Errorf("Expected newest first (2, 1), got (%d, %d)", runs[0].Score, runs[1].Score)
	}
}

func TestStoreRunByID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	if _, err := store.SaveRun(Run{RunID: id, GameID: "bounce", Score: 9}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	run, err := store.RunByID(id)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if run == nil || run.Score != 9 {
		t.Fatalf("Expected run with score 9, got %+v", run)
	}

	missing, err := store.RunByID(uuid.NewString())
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if missing != nil {
		t.Errorf("Expected nil for an unknown run, got %+v", missing)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	id := uuid.NewString()
	if _, err := store.SaveRun(Run{RunID: id, GameID: "bounce"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun(Run{RunID: id, GameID: "bounce"}); err == nil {
		t.Error("Saving the same run twice should fail")
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("bounce")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for no runs, got %d", high)
	}

	for _, score := range []int{100, 300, 200} {
		if _, err := store.SaveRun(Run{GameID: "bounce", Score: score}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	high, err = store.HighScore("bounce")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(Run{GameID: "bounce", Score: 100})         //nolint:errcheck
	store.SaveRun(Run{GameID: "bounce_classic", Score: 200}) //nolint:errcheck

	if err := store.ClearRuns("bounce"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns("bounce", 10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}

	runs, _ = store.TopRuns("bounce_classic", 10)
	if len(runs) != 1 {
		t.Errorf("Other games should be untouched, got %d runs", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Run{
		{GameID: "bounce", Score: 10, Ticks: 100},
		{GameID: "bounce", Score: 30, Ticks: 300},
		{GameID: "bounce_classic", Score: 5, Ticks: 50},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	stats, err := store.GetGameStats("bounce")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 30 || stats.AvgScore != 20 || stats.TotalTicks != 400 {
		t.Errorf("Unexpected stats %+v", *stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	empty, err := store.GetGameStats("nope")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", *empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["bounce_classic"].HighScore != 5 {
		t.Errorf("Unexpected all-games stats %+v", all)
	}
}

func TestStoreConcurrentSaves(t *testing.T) {
	store := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			if _, err := store.SaveRun(Run{GameID: "bounce", Score: score}); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Concurrent SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("bounce", 100)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}
