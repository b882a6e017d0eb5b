package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/highscore"
	"github.com/vovakirdan/bounce-arcade/internal/platform/tui"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a game",
	Long: `Start playing the given variant (default: bounce).

Controls:
  Left/A     - Move paddle left
  Right/D    - Move paddle right
  R          - Restart (after game over)
  Q          - Quit (after game over)
  Ctrl+C     - Quit at any time

Difficulty options:
  easy   - More lives, slower timed speedup
  normal - Config as loaded
  hard   - Fewer lives, faster timed speedup, quicker paddle
  fixed  - No timed speedup; score milestones still apply

Examples:
  bounce play
  bounce play bounce_classic
  bounce play --difficulty hard
  bounce play --seed 42
  bounce play --config ./my-bounce.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bounce list' to see available variants.")
		os.Exit(1)
	}

	logger, logFile, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	keeper := highscore.Open(flagHighScore)
	env, err := gameEnv(variantOf(gameID), keeper, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run history; the game still works without it
	store := openStore(logger)

	opts := tui.Options{
		Store:     store,
		Logger:    logger,
		Bell:      bell(),
		FixedSeed: flagSeed != 0,
	}
	runErr := tui.Run(game, opts, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
