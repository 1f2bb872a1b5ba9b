// keng runs the Jumper Keng platformer in the terminal and hosts the small
// lab exercises (complex numbers, student records, clock arithmetic).
//
// Usage:
//
//	keng play                  - Play Jumper Keng
//	keng list                  - List games and built-in levels
//	keng scores                - Show high scores
//	keng serve                 - Start SSH server for remote play
//	keng config                - Print the default game config
//	keng level check <path>    - Validate a level file
//	keng complex|student|clock - Lab exercise commands
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60, env KENG_FPS)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.keng/keng.db, env KENG_DB)
//	--log <path>        - Write logs to a file (env KENG_LOG)
//	--log-level <level> - debug, info, warn or error (env KENG_LOG_LEVEL)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/keng/internal/config"
	_ "github.com/vovakirdan/keng/internal/games/jumper"
	"github.com/vovakirdan/keng/internal/logging"
	"github.com/vovakirdan/keng/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogPath  string
	flagLogLevel string
)

// Env-backed flag defaults, set before any init runs.
var envSettings, envErr = loadEnv()

// loadEnv reads KENG_* settings. On error the defaults are still returned so
// flags can be built; the error surfaces before any command runs.
func loadEnv() (config.Env, error) {
	e, err := config.LoadEnv()
	if err != nil {
		return config.Env{DBPath: "~/.keng/keng.db", FPS: 60, LogLevel: "info", SSHAddr: ":23234"}, err
	}
	return e, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "keng",
	Short: "Jumper Keng and friends in your terminal",
	Long: `keng is a terminal platformer: climb the tower, dodge the falling
ghosts and grab the crown. It also carries a few lab exercises.

Examples:
  keng play
  keng play --mode hard --difficulty easy
  keng scores --tui
  keng serve --ssh :2222
  keng student list --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return envErr
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", envSettings.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", envSettings.DBPath, "Path to the SQLite database")
	pf.StringVar(&flagLogPath, "log", envSettings.LogPath, "Log file (empty discards logs while the TUI runs)")
	pf.StringVar(&flagLogLevel, "log-level", envSettings.LogLevel, "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(complexCmd)
	rootCmd.AddCommand(studentCmd)
	rootCmd.AddCommand(clockCmd)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// fileLogger returns a logger writing to --log, or a discarding one so the
// alternate screen stays clean.
func fileLogger(prefix string) (*log.Logger, io.Closer, error) {
	if flagLogPath == "" {
		return logging.Discard(), nopCloser{}, nil
	}
	return logging.OpenFile(flagLogPath, prefix, flagLogLevel)
}

// openStore opens the database named by --db.
func openStore() (*storage.Store, error) {
	return storage.Open(flagDBPath)
}

// terminalSize reports the size of stdout, falling back to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
