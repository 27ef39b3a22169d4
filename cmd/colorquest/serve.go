package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/color-quest/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Color Quest SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game. Every SSH user has a separate
history, stored in the server's database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.colorquest/host_key

Examples:
  colorquest serve                           # Listen on :23235 with auto-generated key
  colorquest serve --ssh :2222               # Listen on port 2222
  colorquest serve --host-key ./my_host_key  # Use specific host key
  colorquest serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	logger := newLogger(os.Stderr, cfg.Log.Level).WithPrefix("colorquest-ssh")

	opts, err := navigatorOptions(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend, closeBackend := openBackend(logger)
	defer closeBackend()

	serverCfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
		HistoryKey:   cfg.History.Key,
		HistoryLimit: cfg.History.Limit,
		Bell:         cfg.Feedback.Bell,
		Navigator:    opts,
	}

	server, err := tui.NewSSHServer(serverCfg, backend, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Color Quest SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
