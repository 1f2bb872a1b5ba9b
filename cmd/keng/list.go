package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/games/jumper/levels"
	"github.com/vovakirdan/keng/internal/platform/tui"
	"github.com/vovakirdan/keng/internal/registry"
	"github.com/vovakirdan/keng/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and built-in levels",
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	stats := loadGameStats()
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "ID", "Title", "Played")
	fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, "--", "-----", "------")
	for _, g := range games {
		played := "-"
		if st, ok := stats[g.ID]; ok {
			played = fmt.Sprintf("%d runs, best %d", st.GamesCount, st.HighScore)
		}
		fmt.Printf("  %-*s  %-14s  %s\n", maxIDLen, g.ID, g.Title, played)
	}

	builtin, err := levels.BuiltinAll()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Built-in levels:")
	fmt.Println()
	for _, lvl := range builtin {
		s := lvl.Stats()
		fmt.Printf("  %-*s  %s (%dx%d px, %d tiles)\n", maxIDLen, lvl.ID, lvl.Name, lvl.Width, lvl.Height, s.Tiles)
	}

	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println()
	for _, c := range tui.NewKeyMapper().Controls() {
		fmt.Printf("  %-10s  %s\n", c.Help, strings.Join(keyLabels(c.Keys), ", "))
	}

	fmt.Println()
	fmt.Println("Run 'keng play' to play, or 'keng play --level <id|file>' for another level.")
	return nil
}

// loadGameStats reads per-game totals. The listing works without a
// database, so failures only leave the Played column empty.
func loadGameStats() map[string]*storage.GameStats {
	store, err := openStore()
	if err != nil {
		return nil
	}
	defer store.Close()

	stats, err := store.GetAllGamesStats()
	if err != nil {
		return nil
	}
	return stats
}

func keyLabels(keys []string) []string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return out
}
