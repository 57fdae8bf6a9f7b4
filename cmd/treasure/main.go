// treasure plays Treasure Dash in the terminal.
//
// Usage:
//
//	treasure list                  - List the game variants
//	treasure play [variant]        - Play classic (default) or platformer
//	treasure menu                  - Pick a variant from a menu
//	treasure serve                 - Host the game over SSH
//	treasure scores <variant>      - Show high scores for a variant
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
//
// play, menu and serve also take --config <path> and --difficulty <preset>.
//
// A .env file in the working directory may set ARCADE_DB and ARCADE_CONFIG.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Register the game variants
	_ "github.com/vovakirdan/treasure-dash/internal/games/treasure"
)

var (
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "treasure",
	Short: "Treasure Dash - collect treasures before the floor swallows you",
	Long: `Treasure Dash is a single-screen arcade game for the terminal.

Grab every treasure on the screen to advance a level. Each level adds
obstacles and raises the death zone at the bottom. From level 3 some
obstacles start drifting. The platformer variant adds gravity, jumping
and platforms to stand on.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  treasure play
  treasure play platformer --difficulty hard
  treasure menu
  treasure serve --ssh :2222
  treasure scores classic`,
	PersistentPreRunE: loadEnv,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database (env ARCADE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEnv reads .env and lets ARCADE_* variables fill flags left unset.
func loadEnv(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot load .env: %w", err)
	}
	if err := envDefault(cmd, "db", "ARCADE_DB"); err != nil {
		return err
	}
	return envDefault(cmd, "config", "ARCADE_CONFIG")
}

func envDefault(cmd *cobra.Command, flag, env string) error {
	f := cmd.Flags().Lookup(flag)
	if f == nil || f.Changed {
		return nil
	}
	v, ok := os.LookupEnv(env)
	if !ok || v == "" {
		return nil
	}
	if err := cmd.Flags().Set(flag, v); err != nil {
		return fmt.Errorf("invalid %s: %w", env, err)
	}
	return nil
}
