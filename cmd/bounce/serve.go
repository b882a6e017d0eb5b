package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/bounce-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bounce SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a variant picker menu.
All users share the same high score file and run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bounce/host_key

Examples:
  bounce serve                           # Listen on :23234 with auto-generated key
  bounce serve --ssh :2222               # Listen on port 2222
  bounce serve --host-key ./my_host_key  # Use specific host key
  bounce serve --difficulty hard         # Every session plays on hard

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	addGameFlags(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --log-level: %v\n", err)
		os.Exit(1)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bounce-ssh",
		Level:           level,
	})

	// Config errors are reported once here, not per session
	env, err := gameEnv(variantOf(defaultGameID), nil, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := tui.SSHServerConfig{
		Address:       flagSSHAddr,
		HostKeyPath:   flagHostKey,
		DBPath:        flagDBPath,
		HighScorePath: flagHighScore,
		IdleTimeout:   time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:      flagFPS,
		Game:          env,
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting bounce SSH server on %s\n", cfg.Address)
	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
