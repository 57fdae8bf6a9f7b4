package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-dash/internal/storage"
)

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	return store
}

func TestShowScores(t *testing.T) {
	store := openTestStore(t)
	defer store.Close()
	_, err := store.SaveScore("treasure", 1200, 3)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, showScores(&out, store, "treasure", "classic", false))
	assert.Contains(t, out.String(), "High Scores - Treasure Dash")
	assert.Contains(t, out.String(), "1200")
	assert.Contains(t, out.String(), "Runs: 1")
}

func TestShowScoresEmpty(t *testing.T) {
	store := openTestStore(t)
	defer store.Close()

	var out bytes.Buffer
	require.NoError(t, showScores(&out, store, "treasure_platformer", "platformer", false))
	assert.Contains(t, out.String(), "treasure play platformer")
}

func TestShowScoresClear(t *testing.T) {
	store := openTestStore(t)
	defer store.Close()
	_, err := store.SaveScore("treasure", 500, 2)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, showScores(&out, store, "treasure", "classic", true))
	assert.Contains(t, out.String(), "Cleared scores")

	scores, err := store.TopScores("treasure", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)
}

func TestShowScoresReportsStoreFailures(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Close())

	var out bytes.Buffer
	assert.Error(t, showScores(&out, store, "treasure", "classic", false), "listing on a closed store")
	assert.Error(t, showScores(&out, store, "treasure", "classic", true), "clearing on a closed store")
	assert.Empty(t, out.String())
}
