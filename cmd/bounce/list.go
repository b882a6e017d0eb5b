package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the game variants",
	Long:  `Shows every registered variant of the game.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'bounce play <id>' to play a variant.")
}
