package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start Treasure Dash in interactive menu mode.

Use the arrow keys or w/s to move, Enter to start a variant and Tab to
open the high score table. Esc leaves a finished or paused game and
returns to the menu.

Examples:
  treasure menu
  treasure menu --fps 30
  treasure menu --db ./scores.db
  treasure menu --difficulty easy --config ./my-treasure.yaml`,
	Run: runMenu,
}

func init() {
	addConfigFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
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

	store := openStore(logger)
	runErr := tui.RunSession(store, runtimeConfig(), logger)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
