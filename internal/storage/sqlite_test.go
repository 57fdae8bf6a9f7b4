package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore("treasure", 700, 2)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("treasure")
	require.NoError(t, err)
	assert.Equal(t, 700, high)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []struct{ score, level int }{{100, 1}, {1200, 3}, {600, 2}}
	for _, r := range runs {
		id, err := store.SaveScore("treasure", r.score, r.level)
		require.NoError(t, err)
		assert.Positive(t, id)
	}
	_, err := store.SaveScore("treasure_platformer", 9999, 7)
	require.NoError(t, err)

	scores, err := store.TopScores("treasure", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, 1200, scores[0].Score)
	assert.Equal(t, 3, scores[0].Level)
	assert.Equal(t, 600, scores[1].Score)
	assert.Equal(t, 100, scores[2].Score)
	for _, s := range scores {
		assert.Equal(t, "treasure", s.GameID)
		assert.False(t, s.CreatedAt.IsZero())
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		_, err := store.SaveScore("treasure", i*100, 1+i/5)
		require.NoError(t, err)
	}

	scores, err := store.TopScores("treasure", 5)
	require.NoError(t, err)
	require.Len(t, scores, 5)
	assert.Equal(t, 1900, scores[0].Score)
	assert.Equal(t, 1500, scores[4].Score)

	scores, err = store.TopScores("treasure", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("treasure")
	require.NoError(t, err)
	assert.Equal(t, 0, high, "empty table has no high score")

	for _, s := range []int{300, 1700, 800} {
		_, err := store.SaveScore("treasure", s, 1)
		require.NoError(t, err)
	}

	high, err = store.HighScore("treasure")
	require.NoError(t, err)
	assert.Equal(t, 1700, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore("treasure", 100, 1)
	require.NoError(t, err)
	_, err = store.SaveScore("treasure_platformer", 200, 1)
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("treasure"))

	scores, err := store.TopScores("treasure", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = store.TopScores("treasure_platformer", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1, "other game untouched")
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		_, err := store.SaveScore("treasure_platformer", i*10, 1)
		require.NoError(t, err)
	}

	scores, err := store.AllScores("treasure_platformer")
	require.NoError(t, err)
	assert.Len(t, scores, 20)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("treasure")
	require.NoError(t, err)
	assert.Equal(t, 0, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	for _, r := range []struct{ score, level int }{{100, 1}, {600, 2}, {1400, 4}} {
		_, err := store.SaveScore("treasure", r.score, r.level)
		require.NoError(t, err)
	}

	stats, err = store.GetGameStats("treasure")
	require.NoError(t, err)
	assert.Equal(t, "treasure", stats.GameID)
	assert.Equal(t, 3, stats.GamesCount)
	assert.Equal(t, 1400, stats.HighScore)
	assert.Equal(t, 4, stats.BestLevel)
	assert.Equal(t, int64(2100), stats.TotalScore)
	assert.InDelta(t, 700.0, stats.AvgScore, 1e-9)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestStoreMigratesLegacyScoresTable(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "legacy.db")

	db, err := sql.Open("sqlite", dbPath)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO scores (game_id, score) VALUES ('treasure', 400)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	scores, err := store.TopScores("treasure", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, 400, scores[0].Score)
	assert.Equal(t, 1, scores[0].Level, "legacy rows default to level 1")
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
