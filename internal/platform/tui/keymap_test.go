package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/treasure-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapDirections(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Direction
	}{
		{"w", runeKey('w'), core.DirUp},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.DirUp},
		{"s", runeKey('s'), core.DirDown},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.DirDown},
		{"a", runeKey('a'), core.DirLeft},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.DirLeft},
		{"d", runeKey('d'), core.DirRight},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.DirRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, ok := km.Direction(tt.msg)
			assert.True(t, ok)
			assert.Equal(t, tt.want, dir)
		})
	}

	_, ok := km.Direction(runeKey('x'))
	assert.False(t, ok)
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, core.ActionJump, km.Action(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}))
	assert.Equal(t, core.ActionConfirm, km.Action(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, core.ActionPause, km.Action(runeKey('p')))
	assert.Equal(t, core.ActionRestart, km.Action(runeKey('r')))
	assert.Equal(t, core.ActionNone, km.Action(runeKey('q')), "quit is handled by the platform")
	assert.Equal(t, core.ActionNone, km.Action(runeKey('w')), "directions are not actions")
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	assert.NotEmpty(t, km.ShortHelp())
	assert.Len(t, km.FullHelp(), 3)
	assert.NotEmpty(t, menuKeys{km}.ShortHelp())
	assert.NotEmpty(t, scoreboardKeys{km}.ShortHelp())
}
