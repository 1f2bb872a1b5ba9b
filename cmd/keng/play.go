package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/config"
	"github.com/vovakirdan/keng/internal/core"
	"github.com/vovakirdan/keng/internal/games/jumper"
	"github.com/vovakirdan/keng/internal/games/jumper/levels"
	"github.com/vovakirdan/keng/internal/platform/tui"
	"github.com/vovakirdan/keng/internal/registry"
)

// gameFlags are the session settings shared by play and serve.
type gameFlags struct {
	config     string
	difficulty string
	mode       string
	level      string
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&f.mode, "mode", "normal", "Ghost mode for the first run: normal, hard")
	cmd.Flags().StringVar(&f.level, "level", "", "Level file, level directory or built-in level id")
}

// apply validates the flags and hands them to the jumper package.
func (f *gameFlags) apply() error {
	if f.difficulty != "" && config.ParsePreset(f.difficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", f.difficulty)
	}
	if f.mode != "normal" && f.mode != "hard" {
		return fmt.Errorf("unknown mode %q (want normal or hard)", f.mode)
	}
	if f.config != "" {
		if _, err := config.LoadJumper(f.config); err != nil {
			return err
		}
	}
	if f.level != "" {
		if _, err := levels.Resolve(f.level); err != nil {
			return fmt.Errorf("level %s: %w", f.level, err)
		}
	}

	jumper.SetConfigPath(f.config)
	jumper.SetDifficultyPreset(f.difficulty)
	jumper.SetMode(f.mode)
	jumper.SetLevel(f.level)
	return nil
}

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play Jumper Keng",
	Long: `Start a game session. The game opens on its menu.

Controls:
  Left/Right, A/D - Run
  Space/Up/W      - Jump (press again in the air to double jump)
  Enter           - Press the highlighted button
  Up/Down         - Move through menu buttons
  P               - Pause
  Esc/B           - Close submenu, or leave the run for the menu
  Ctrl+S          - Save a screenshot to ~/.keng/screenshots
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max (three jumps)
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  keng play
  keng play --mode hard
  keng play --difficulty fixed --level ./levels/tower.yaml
  keng play --config ./my-jumper.yaml --log ~/.keng/keng.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := jumper.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'keng list')", gameID)
	}
	if err := playFlags.apply(); err != nil {
		return err
	}

	logger, closer, err := fileLogger("keng")
	if err != nil {
		return err
	}
	defer closer.Close()
	jumper.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.Options{Logger: logger, Player: os.Getenv("USER")}
	store, err := openStore()
	if err != nil {
		// Play still works without a scoreboard.
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "error", err)
	} else {
		defer store.Close()
		opts.Scores = store
	}

	if err := tui.Run(game, cfg, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
