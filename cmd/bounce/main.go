// bounce is a terminal paddle-and-ball arcade game.
//
// Usage:
//
//	bounce list              - List game variants
//	bounce play [variant]    - Play a variant (default: bounce)
//	bounce menu              - Pick a variant interactively
//	bounce serve             - Start SSH server for remote play
//	bounce scores [variant]  - Show run history for a variant
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set run history path (default: ~/.bounce/history.db)
//	--highscore <path>   - Set high score file (default: ~/.bounce/highscore.txt)
//	--log <path>         - Set log file, empty to disable (default: ~/.bounce/bounce.log)
//	--log-level <level>  - Set log level (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bounce-arcade/internal/config"
	"github.com/vovakirdan/bounce-arcade/internal/core"
	"github.com/vovakirdan/bounce-arcade/internal/highscore"
	"github.com/vovakirdan/bounce-arcade/internal/registry"
	"github.com/vovakirdan/bounce-arcade/internal/storage"

	// Import the game to register its variants
	_ "github.com/vovakirdan/bounce-arcade/internal/games/bounce"
)

const defaultGameID = "bounce"

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagHighScore string
	flagLogPath   string
	flagLogLevel  string
	flagMute      bool

	// Game flags, registered on the commands that create games
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bounce",
	Short: "Bounce - keep the balls in play with your paddle",
	Long: `Bounce is a terminal paddle-and-ball game. Balls fall through a walled
field; every paddle hit scores a point and makes the game a little harder.
Let a ball reach the floor and you lose a life.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View run history

Examples:
  bounce play
  bounce play bounce_classic --difficulty hard
  bounce menu
  bounce serve --ssh :2222
  bounce scores bounce`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", highscore.DefaultPath, "Path to high score file")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.bounce/bounce.log", "Path to log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable the terminal bell")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// addGameFlags registers the flags that shape a game's config.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// newFileLogger opens the log file for interactive commands.
// Logging to the terminal would corrupt the alt screen.
func newFileLogger() (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	if flagLogPath == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	path, err := expandPath(flagLogPath)
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- user-chosen log path
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce",
		Level:           level,
	})
	return logger, f, nil
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameEnv checks the game flags and builds the environment games are
// created with. An explicit --config must load; games fall back to
// defaults on their own, so a broken file is caught here.
func gameEnv(variant config.Variant, keeper core.HighScoreKeeper, logger *log.Logger) (registry.Env, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return registry.Env{}, err
	}

	if flagConfig != "" {
		if _, err := config.Load(variant, flagConfig); err != nil {
			return registry.Env{}, err
		}
	}

	return registry.Env{
		ConfigPath: flagConfig,
		Preset:     preset,
		HighScores: keeper,
		Logger:     logger,
	}, nil
}

// variantOf returns the config variant behind a registered game ID.
func variantOf(gameID string) config.Variant {
	if gameID == "bounce_classic" {
		return config.VariantClassic
	}
	return config.VariantGravity
}

// openStore opens the run history. Play goes on without it.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run history: %v\n", err)
		logger.Warn("could not open run history", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// bell returns the writer the terminal bell rings on, or nil when muted.
func bell() io.Writer {
	if flagMute {
		return nil
	}
	return os.Stderr
}
