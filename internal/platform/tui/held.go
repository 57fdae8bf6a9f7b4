package tui

import "github.com/vovakirdan/treasure-dash/internal/core"

// DefaultHoldTicks covers the typical auto-repeat delay of a terminal
// at 60 ticks per second.
const DefaultHoldTicks = 30

// HeldKeys turns key-press events into a held-direction state.
// Terminals only report presses and auto-repeats, never releases, so a
// direction stays held for a fixed number of ticks after its last press.
type HeldKeys struct {
	hold      int
	remaining [4]int
}

// NewHeldKeys creates a tracker that holds each press for hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	if hold <= 0 {
		hold = DefaultHoldTicks
	}
	return &HeldKeys{hold: hold}
}

// Press marks dir as held and releases its opposite.
func (h *HeldKeys) Press(dir core.Direction) {
	if int(dir) >= len(h.remaining) {
		return
	}
	h.remaining[dir] = h.hold
	h.remaining[opposite(dir)] = 0
}

// Tick returns the directions held for this tick, then ages every press.
func (h *HeldKeys) Tick() core.Directions {
	var dirs core.Directions
	for _, d := range core.AllDirections() {
		if h.remaining[d] > 0 {
			dirs.Press(d)
			h.remaining[d]--
		}
	}
	return dirs
}

// Clear releases every direction.
func (h *HeldKeys) Clear() {
	h.remaining = [4]int{}
}

func opposite(d core.Direction) core.Direction {
	switch d {
	case core.DirUp:
		return core.DirDown
	case core.DirDown:
		return core.DirUp
	case core.DirLeft:
		return core.DirRight
	default:
		return core.DirLeft
	}
}
