package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/treasure-dash/internal/config"
	"github.com/vovakirdan/treasure-dash/internal/core"
	"github.com/vovakirdan/treasure-dash/internal/games/treasure"
	"github.com/vovakirdan/treasure-dash/internal/platform/tui"
	"github.com/vovakirdan/treasure-dash/internal/registry"
	"github.com/vovakirdan/treasure-dash/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [classic|platformer]",
	Short: "Play a variant",
	Long: `Start playing Treasure Dash. The classic variant is the default.

Controls:
  WASD/Arrows  - Move (platformer: left/right, up jumps)
  Space        - Jump (platformer)
  Enter        - Start
  P            - Pause
  R            - Restart
  Esc          - Leave (when not running)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 lives, more room around obstacles and treasures
  normal - 3 lives, default spacing
  hard   - 2 lives, tighter spacing

Examples:
  treasure play
  treasure play platformer
  treasure play --difficulty hard
  treasure play classic --config ./my-treasure.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
}

// addConfigFlags registers the game config flags on a command that starts games.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML (env ARCADE_CONFIG)")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// applyGameConfig hands the config flags to the game package and checks that
// the resulting config loads, so errors surface before the alt screen opens.
func applyGameConfig() error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (easy, normal, hard)", flagDifficulty)
	}
	treasure.SetConfigPath(flagConfig)
	treasure.SetDifficultyPreset(flagDifficulty)

	cfg, err := treasure.LoadConfig()
	if err != nil {
		return err
	}
	return cfg.Validate()
}

func runPlay(_ *cobra.Command, args []string) {
	variant := "classic"
	if len(args) == 1 {
		variant = args[0]
	}
	gameID, err := resolveVariant(variant)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := applyGameConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)
	runErr := tui.Run(game, store, runtimeConfig(), logger)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database; the game still runs without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("running without scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
