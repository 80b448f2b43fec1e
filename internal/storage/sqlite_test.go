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

func mustSave(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveScore(Score{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	mustSave(t, store, "match3", 420)
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore("match3")
	if err != nil || high != 420 {
		t.Errorf("HighScore() after reopen = %d, %v; expected 420", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	session := uuid.NewString()
	if _, err := store.SaveScore(Score{SessionID: session, GameID: "match3", Level: 3, Score: 100, Turns: 41}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	mustSave(t, store, "match3", 50)
	mustSave(t, store, "match3", 200)
	mustSave(t, store, "match3_endless", 500)

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %+v", scores)
	}

	second := scores[1]
	if second.SessionID != session || second.Level != 3 || second.Turns != 41 {
		t.Errorf("stored fields lost: %+v", second)
	}
	if second.CreatedAt.IsZero() {
		t.Error("CreatedAt should be parsed")
	}

	endless, err := store.TopScores("match3_endless", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(endless) != 1 {
		t.Errorf("Expected 1 endless score, got %d", len(endless))
	}
}

func TestStoreGeneratesSessionIDs(t *testing.T) {
	store := openTestStore(t)
	mustSave(t, store, "match3", 10)
	mustSave(t, store, "match3", 20)

	scores, err := store.TopScores("match3", 10)
	if err != nil {
		t.Fatal(err)
	}
	if scores[0].SessionID == scores[1].SessionID {
		t.Error("each game should get its own session id")
	}
	for _, s := range scores {
		if _, err := uuid.Parse(s.SessionID); err != nil {
			t.Errorf("session id %q is not a UUID: %v", s.SessionID, err)
		}
	}
}

func TestStoreRejectsDuplicateAndInvalidSessions(t *testing.T) {
	store := openTestStore(t)
	session := uuid.NewString()

	if _, err := store.SaveScore(Score{SessionID: session, GameID: "match3", Score: 1}); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	if _, err := store.SaveScore(Score{SessionID: session, GameID: "match3", Score: 2}); err == nil {
		t.Error("saving a session twice should fail")
	}
	if _, err := store.SaveScore(Score{SessionID: "not-a-uuid", GameID: "match3", Score: 3}); err == nil {
		t.Error("a malformed session id should be rejected")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		mustSave(t, store, "test", (i+1)*100)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("test", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 5 {
		t.Errorf("limit 0 should fall back to the default, got %d rows", len(all))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	mustSave(t, store, "match3", 100)
	mustSave(t, store, "match3", 300)
	mustSave(t, store, "match3", 200)

	high, err = store.HighScore("match3")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, "match3", 100)
	mustSave(t, store, "match3", 200)
	mustSave(t, store, "match3_endless", 300)

	if err := store.ClearScores("match3"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	campaign, _ := store.TopScores("match3", 10)
	if len(campaign) != 0 {
		t.Errorf("Expected 0 campaign scores after clear, got %d", len(campaign))
	}

	endless, _ := store.TopScores("match3_endless", 10)
	if len(endless) != 1 {
		t.Errorf("Endless scores should not be affected by clearing campaign")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unplayed game should have zero stats, got %+v", empty)
	}

	for _, sc := range []Score{
		{GameID: "match3", Level: 2, Score: 100, Turns: 10},
		{GameID: "match3", Level: 5, Score: 300, Turns: 30},
		{GameID: "match3_endless", Score: 900, Turns: 50},
	} {
		if _, err := store.SaveScore(sc); err != nil {
			t.Fatal(err)
		}
	}

	stats, err := store.GetGameStats("match3")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 300 || stats.TotalScore != 400 {
		t.Errorf("unexpected stats: %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, expected 200", stats.AvgScore)
	}
	if stats.BestLevel != 5 || stats.TotalTurns != 40 {
		t.Errorf("BestLevel/TotalTurns = %d/%d, expected 5/40", stats.BestLevel, stats.TotalTurns)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected stats for 2 games, got %d", len(all))
	}
	if all["match3_endless"].HighScore != 900 {
		t.Errorf("endless high score = %d", all["match3_endless"].HighScore)
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
