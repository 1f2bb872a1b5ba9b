package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/games/jumper"
	"github.com/vovakirdan/keng/internal/platform/tui"
	"github.com/vovakirdan/keng/internal/registry"
	"github.com/vovakirdan/keng/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMode  string
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the best runs for a game (default: jumper).

Examples:
  keng scores
  keng scores --mode hard --limit 5
  keng scores --limit 0
  keng scores --tui
  keng scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show (0 shows every run)")
	scoresCmd.Flags().StringVar(&flagScoresMode, "mode", "", "Only show runs in this mode (normal, hard)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored runs for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := jumper.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'keng list')", err)
	}
	title := game.Title()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return nil
	}

	if flagScoresTUI {
		width, height := terminalSize()
		return tui.RunScoreboard(store, gameID, title, width, height)
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}
	if flagScoresMode != "" {
		filtered := scores[:0]
		for _, s := range scores {
			if s.Mode == flagScoresMode {
				filtered = append(filtered, s)
			}
		}
		scores = filtered
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'keng play' and reach the crown to set the first score!")
		return nil
	}

	printScores(scores)

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Runs: %d  Average: %.0f  Fastest: %ds\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestSeconds)
	return nil
}

func printScores(scores []storage.ScoreEntry) {
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %-10s  %s\n", "Rank", "Score", "Mode", "Caught", "Time", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-6s  %-6s  %-10s  %s\n", "----", "-----", "----", "------", "----", "------", "----")

	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-6s  %-6d  %-6s  %-10s  %s\n",
			i+1, e.Score, e.Mode, e.Captures, fmt.Sprintf("%ds", e.Seconds), player,
			e.CreatedAt.Format("2006-01-02 15:04"))
	}
}
