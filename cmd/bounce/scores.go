package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/highscore"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show run history for a variant",
	Long: `Display the top 10 runs for the given variant (default: bounce),
with per-variant totals and the all-time high score.

Examples:
  bounce scores
  bounce scores bounce_classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available variants.")
		os.Exit(1)
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(gameID, 10)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Run History - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bounce play %s' to set the first score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
		fmt.Printf("  %-4s  %-8s  %-8s  %s\n", "----", "-----", "-----", "----")

		for i, run := range runs {
			mark := ""
			if run.NewHigh {
				mark = " *"
			}
			dateStr := run.CreatedAt.Format("2006-01-02 15:04")
			fmt.Printf("  %-4d  %-8d  %-8d  %s%s\n", i+1, run.Score, run.Ticks, dateStr, mark)
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
		}
	}

	fmt.Println()
	fmt.Printf("High score (all variants): %d\n", highscore.Load(flagHighScore))
}
