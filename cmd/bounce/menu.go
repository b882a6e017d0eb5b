package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/highscore"
	"github.com/vovakirdan/bounce-arcade/internal/platform/tui"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start bounce with a variant picker menu",
	Long: `Start bounce in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Tab          - Run history
  Q            - Quit

Examples:
  bounce menu
  bounce menu --fps 30
  bounce menu --difficulty easy`,
	Run: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, logFile, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	keeper := highscore.Open(flagHighScore)
	store := openStore(logger)
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := runtimeConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from history
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		env, err := gameEnv(variantOf(gameID), keeper, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		game, err := registry.Create(gameID, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		opts := tui.Options{
			Store:     store,
			Logger:    logger,
			Bell:      bell(),
			FixedSeed: flagSeed != 0,
		}
		if err := tui.Run(game, opts, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}
}
