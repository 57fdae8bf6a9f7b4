package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/treasure-dash/internal/core"
	"github.com/vovakirdan/treasure-dash/internal/registry"
	"github.com/vovakirdan/treasure-dash/internal/storage"
)

const (
	footerRows   = 1
	toastSeconds = 2
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// toast is a notice shown over the playfield for a limited number of ticks.
type toast struct {
	notice core.Notice
	ticks  int
}

// GameModel is the Bubble Tea model that drives one game.
type GameModel struct {
	game    registry.Game
	screen  *core.Screen
	palette Palette
	store   *storage.Store
	logger  *log.Logger
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	held    *HeldKeys
	input   core.InputFrame
	state   core.GameState
	toast   toast
	best    int
	gen     int

	exitOnBack bool // standalone play has no menu to return to
	quitting   bool
	backToMenu bool
	scoreSaved bool // score already stored for the current game over
}

// NewGameModel creates a model for game. A zero seed is replaced with the
// current time and a nil logger discards output.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-footerRows)),
		palette: NewPalette(nil),
		store:   store,
		logger:  orDiscard(logger),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		held:    NewHeldKeys(holdTicks(cfg.TickRate)),
		input:   core.NewInputFrame(),
	}
}

// WithPalette returns a copy of the model that renders with p.
func (m GameModel) WithPalette(p Palette) GameModel {
	m.palette = p
	return m
}

// holdTicks scales DefaultHoldTicks to the tick rate.
func holdTicks(tickRate int) int {
	return max(1, DefaultHoldTicks*tickRate/60)
}

func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)

	if c, ok := m.game.(interface{ ConfigErr() error }); ok {
		if err := c.ConfigErr(); err != nil {
			m.logger.Warn("using default config", "game", m.game.ID(), "err", err)
		}
	}
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed)

	return tickCmd(m.config.TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-footerRows))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.held.Clear()
		if m.state.Running {
			m.input.Set(core.ActionPause)
		}
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.state.Running {
			return m, nil
		}
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if dir, ok := m.keys.Direction(msg); ok {
		m.held.Press(dir)
		return m, nil
	}
	if a := m.keys.Action(msg); a != core.ActionNone {
		m.input.Set(a)
	}
	return m, nil
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.input.Dirs = m.held.Tick()

	prev := m.state
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if m.toast.ticks > 0 {
		m.toast.ticks--
	}
	for _, n := range result.Notices {
		m.logger.Info("notice", "game", m.game.ID(), "title", n.Title, "detail", n.Lines)
		m.toast = toast{notice: n, ticks: toastSeconds * m.config.TickRate}
	}

	switch {
	case m.state.GameOver && !m.scoreSaved:
		m.saveScore()
		m.scoreSaved = true
	case !m.state.GameOver && prev.GameOver:
		m.logger.Info("game restarted", "game", m.game.ID())
		m.scoreSaved = false
		m.toast = toast{}
	}

	return m, tickCmd(m.config.TickRate, m.gen)
}

// saveScore stores the final result once per game over.
func (m *GameModel) saveScore() {
	score, level := m.state.Score, m.state.Level
	m.logger.Info("game over", "game", m.game.ID(), "score", score, "level", level)
	if m.store == nil || score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), score, level); err != nil {
		m.logger.Error("could not save score", "game", m.game.ID(), "err", err)
		return
	}
	m.best = max(m.best, score)
}

// saveScreenshot writes the current frame as plain text under ~/.arcade/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the playfield, the active toast and the help footer.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	if m.toast.ticks > 0 && m.state.Running {
		drawToast(m.screen, m.toast.notice)
	}

	footer := m.help.View(m.keys)
	if m.best > 0 {
		footer += fmt.Sprintf("  best %d", m.best)
	}
	return m.palette.Render(m.screen) + "\n" + footerStyle.Render(footer)
}

// drawToast draws a notice box near the top of the playfield.
func drawToast(dst *core.Screen, n core.Notice) {
	lines := append([]string{n.Title}, n.Lines...)
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	boxW := min(width+4, dst.Width())
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBox(r)
	for i, l := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColor(boxX+(boxW-len([]rune(l)))/2, boxY+1+i, l, color)
	}
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting reports whether the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu reports whether the user asked to return to the menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays game in the current terminal until the user quits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewGameModel(game, store, cfg, logger)
	model.exitOnBack = true
	if store != nil {
		if best, err := store.HighScore(game.ID()); err == nil {
			model.best = best
		}
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
