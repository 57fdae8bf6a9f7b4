// Package tui runs Treasure Dash in a terminal with Bubble Tea.
// It owns the fixed-rate tick loop, key mapping, the menu and scoreboard
// screens, and the Wish SSH server that hosts them remotely.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one simulation step.
// Gen identifies the tick chain so that a chain left over from a previous
// game is dropped instead of doubling the tick rate.
type TickMsg struct {
	Time time.Time
	Gen  int
}

// tickCmd schedules the next TickMsg of chain gen at the given rate.
func tickCmd(tickRate, gen int) tea.Cmd {
	interval := time.Second / time.Duration(max(1, tickRate))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
