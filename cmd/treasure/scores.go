package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-dash/internal/registry"
	"github.com/vovakirdan/treasure-dash/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <classic|platformer>",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 results and totals for the given variant.

Examples:
  treasure scores classic
  treasure scores platformer
  treasure scores classic --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every stored score for the variant")
}

func runScores(_ *cobra.Command, args []string) {
	gameID, err := resolveVariant(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	err = showScores(os.Stdout, store, gameID, args[0], flagClearScores)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// showScores prints the top scores and totals for gameID, or clears them.
func showScores(w io.Writer, store *storage.Store, gameID, variant string, wipe bool) error {
	if wipe {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Fprintf(w, "Cleared scores for %s.\n", registry.Title(gameID))
		return nil
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Fprintf(w, "High Scores - %s\n", registry.Title(gameID))
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'treasure play %s' to set the first high score!\n", variant)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-10s  %-5s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Fprintf(w, "  %-4d  %-10d  %-5d  %s\n", i+1, entry.Score, entry.Level, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Runs: %d  Best: %d  Average: %.0f  Highest level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	}
	return nil
}
