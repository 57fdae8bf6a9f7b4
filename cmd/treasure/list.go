package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/treasure-dash/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered Treasure Dash variant.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	names := make(map[string]string, len(variantIDs))
	for name, id := range variantIDs {
		names[id] = name
	}

	fmt.Println("Available variants:")
	fmt.Println()
	fmt.Printf("  %-12s  %-20s  %s\n", "Name", "ID", "Title")
	fmt.Printf("  %-12s  %-20s  %s\n", "----", "--", "-----")
	for _, g := range registry.List() {
		fmt.Printf("  %-12s  %-20s  %s\n", names[g.ID], g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'treasure play <name>' to play a variant.")
}
