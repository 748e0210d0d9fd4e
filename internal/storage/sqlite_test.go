package storage

import (
	"os"
	"path/filepath"
	"testing"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Parent directories are created on demand
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("runner", score, "normal", 42); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	// Scores under another ID stay separate.
	if _, err := store.SaveScore("other", 500, "hard", 7); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("runner", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("scores not sorted descending: %v", scores)
	}
	if scores[0].Difficulty != "normal" || scores[0].Seed != 42 {
		t.Errorf("entry metadata = %+v", scores[0])
	}
}

func TestTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		if _, err := store.SaveScore("runner", i*10, "normal", 0); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("runner", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(scores))
	}

	// Zero limit falls back to the default of 10.
	scores, err = store.TopScores("runner", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 10 {
		t.Errorf("Expected 10 scores with default limit, got %d", len(scores))
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database yields zero, not an error.
	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() on empty db = %d, expected 0", high)
	}

	store.SaveScore("runner", 300, "easy", 0)
	store.SaveScore("runner", 700, "hard", 0)
	store.SaveScore("runner", 150, "normal", 0)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("HighScore() = %d, expected 700", high)
	}
}

func TestEmptyDifficultyDefaults(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore("runner", 10, "", 0); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.AllScores("runner")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Difficulty != "normal" {
		t.Errorf("scores = %+v, expected difficulty to default to normal", scores)
	}
}

func TestClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("runner", 100, "normal", 0)
	store.SaveScore("other", 200, "normal", 0)

	if err := store.ClearScores("runner"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, _ := store.AllScores("runner")
	if len(scores) != 0 {
		t.Errorf("Expected no runner scores after clear, got %d", len(scores))
	}

	// Other games are untouched.
	others, _ := store.AllScores("other")
	if len(others) != 1 {
		t.Errorf("Expected 1 other score, got %d", len(others))
	}
}

func TestGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 0 {
		t.Errorf("empty stats count = %d", stats.GamesCount)
	}

	store.SaveScore("runner", 100, "normal", 0)
	store.SaveScore("runner", 300, "normal", 0)

	stats, err = store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("count = %d, expected 2", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("high = %d, expected 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg = %f, expected 200", stats.AvgScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("total = %d, expected 400", stats.TotalScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}
}
