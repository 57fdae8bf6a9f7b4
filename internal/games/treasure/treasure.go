package treasure

// CollectTreasure collects treasure i if the player overlaps it.
// It awards points, spawns a particle burst and returns true only on the
// first collection.
func CollectTreasure(w *World, i int) bool {
	t := &w.Treasures[i]
	if t.Collected || !t.Rect().Overlaps(w.Player.Rect()) {
		return false
	}

	t.Collected = true
	w.Score += w.cfg.Scoring.Treasure
	cx, cy := t.Rect().Center()
	w.Particles = append(w.Particles, spawnBurst(w, cx, cy)...)
	w.emit(TreasureCollectedEvent{Index: i, Score: w.Score})
	return true
}
