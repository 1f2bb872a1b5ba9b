package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/games/jumper"
	"github.com/vovakirdan/keng/internal/logging"
	"github.com/vovakirdan/keng/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	serveFlags      gameFlags
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that lets users connect and play Jumper Keng.

Each SSH connection gets its own session. Scores are stored per server
under the connecting user's name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.keng/host_key

Examples:
  keng serve                           # Listen on :23234 with auto-generated key
  keng serve --ssh :2222               # Listen on port 2222
  keng serve --host-key ./my_host_key  # Use specific host key
  keng serve --mode hard --db ./keng.db

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", envSettings.SSHAddr, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveFlags.register(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	if err := serveFlags.apply(); err != nil {
		return err
	}

	logger := logging.New(os.Stderr, "keng-ssh", flagLogLevel)
	if flagLogPath != "" {
		fl, closer, err := logging.OpenFile(flagLogPath, "keng-ssh", flagLogLevel)
		if err != nil {
			return err
		}
		defer closer.Close()
		logger = fl
	}
	jumper.SetLogger(logger)

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = jumper.GameID
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Starting keng SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
