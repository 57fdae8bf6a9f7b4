package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-dash/internal/core"
	"github.com/vovakirdan/treasure-dash/internal/registry"
	"github.com/vovakirdan/treasure-dash/internal/storage"
)

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel runs the menu, game and scoreboard screens in one program.
// It backs both the local menu command and every SSH session.
type SessionModel struct {
	store   *storage.Store
	logger  *log.Logger
	palette Palette
	config  core.RuntimeConfig
	screen  sessionScreen
	menu    MenuModel
	board   ScoreboardModel
	game    GameModel
	games   int // number of games started, used as the tick chain id
}

// NewSessionModel creates a session that opens on the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, palette Palette, logger *log.Logger) SessionModel {
	return SessionModel{
		store:   store,
		logger:  orDiscard(logger),
		palette: palette,
		config:  cfg,
		menu:    NewMenuModel(store, cfg.ScreenW, cfg.ScreenH),
	}
}

// Init implements tea.Model.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes msg to the active screen and handles transitions.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.board = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.board.Init()

	case m.menu.Selected() != nil:
		item := *m.menu.Selected()
		game, err := registry.Create(item.GameID)
		if err != nil {
			m.logger.Error("cannot create game", "game", item.GameID, "err", err)
			m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}

		cfg := m.config
		cfg.Seed = 0
		m.games++
		m.game = NewGameModel(game, m.store, cfg, m.logger).WithPalette(m.palette)
		m.game.gen = m.games
		m.game.best = item.Best
		m.screen = screenGame
		return m, m.game.Init()
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	switch {
	case m.game.IsQuitting():
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.openMenu()
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	m.board = next.(ScoreboardModel)

	switch {
	case m.board.IsQuitting():
		return m, tea.Quit
	case m.board.IsGoingBack():
		return m.openMenu()
	}
	return m, cmd
}

// openMenu rebuilds the menu so that new high scores show up.
func (m SessionModel) openMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.store, m.config.ScreenW, m.config.ScreenH)
	m.screen = screenMenu
	return m, m.menu.Init()
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs the menu-driven session in the current terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, NewPalette(nil), logger),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
