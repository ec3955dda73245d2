package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/makery/sokoban/internal/config"
	"github.com/makery/sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagSSHLevels   string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play remotely.

Each SSH connection gets its own game session. Highscores are stored
per-server (all users share the same database).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sokoban/host_key

Examples:
  sokoban serve                           # Listen on :23235 with auto-generated key
  sokoban serve --ssh :2222               # Listen on port 2222
  sokoban serve --host-key ./my_host_key  # Use specific host key
  sokoban serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagSSHLevels, "levels", "", "Path to a level file (default: built-in levels)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.DefaultSSHServerConfig()
	if cfg.SSH.Address != "" {
		srvCfg.Address = cfg.SSH.Address
	}
	if cfg.SSH.HostKeyPath != "" {
		srvCfg.HostKeyPath = cfg.SSH.HostKeyPath
	}
	if cfg.SSH.IdleTimeoutMinutes > 0 {
		srvCfg.IdleTimeout = time.Duration(cfg.SSH.IdleTimeoutMinutes) * time.Minute
	}
	if cfg.Scores.Path != "" {
		srvCfg.DBPath = cfg.Scores.Path
	}
	if cfg.Game.TickRate > 0 {
		srvCfg.TickRate = cfg.Game.TickRate
	}
	srvCfg.LevelsPath = cfg.Levels.Path

	// Flags override config.
	if flagSSHAddr != "" {
		srvCfg.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		srvCfg.HostKeyPath = flagHostKey
	}
	if flagSSHLevels != "" {
		srvCfg.LevelsPath = flagSSHLevels
	}
	if flagDBPath != "" {
		srvCfg.DBPath = flagDBPath
	}
	if flagFPS > 0 {
		srvCfg.TickRate = flagFPS
	}
	if flagIdleTimeout > 0 {
		srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting sokoban SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p <port>")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
