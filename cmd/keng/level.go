package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/keng/internal/games/jumper/levels"
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Inspect level files",
}

var levelCheckCmd = &cobra.Command{
	Use:   "check <path|id> [id]",
	Short: "Validate a level and print its tile counts and bounds",
	Long: `Load a level file (.txt or .yaml), a directory of levels, or a built-in
level id, and report what the game would see. With a directory and an id,
the level with that id is picked from the directory.

Examples:
  keng level check ./levels/tower.yaml
  keng level check ./levels tower
  keng level check keng`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLevelCheck,
}

var levelListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List level ids in a directory, or the built-in levels",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLevelList,
}

func init() {
	levelCmd.AddCommand(levelCheckCmd)
	levelCmd.AddCommand(levelListCmd)
}

func runLevelCheck(_ *cobra.Command, args []string) error {
	lvl, err := checkLevel(args)
	if err != nil {
		return err
	}
	printLevel(lvl)
	return nil
}

func checkLevel(args []string) (levels.Level, error) {
	if len(args) == 2 {
		lvl, err := levels.NewLoader(args[0]).Find(args[1])
		if err != nil {
			return levels.Level{}, fmt.Errorf("level %s: %w", args[1], err)
		}
		return lvl, nil
	}
	lvl, err := levels.Resolve(args[0])
	if err != nil {
		return levels.Level{}, fmt.Errorf("level %s: %w", args[0], err)
	}
	return lvl, nil
}

func printLevel(lvl levels.Level) {
	s := lvl.Stats()
	name := lvl.Name
	if name == "" {
		name = lvl.ID
	}
	fmt.Printf("Level %s (%s)\n", lvl.ID, name)
	if lvl.FilePath != "" {
		fmt.Printf("  File:       %s\n", lvl.FilePath)
	}
	fmt.Printf("  Bounds:     %dx%d px, %d px tiles\n", lvl.Width, lvl.Height, lvl.TileSize)
	if lvl.HasSpawn {
		fmt.Printf("  Spawn:      (%g, %g)\n", lvl.SpawnX, lvl.SpawnY)
	} else {
		fmt.Println("  Spawn:      from config")
	}
	fmt.Printf("  Tiles:      %d\n", s.Tiles)
	fmt.Printf("  Solid:      %d\n", s.Solid)
	fmt.Printf("  Crowns:     %d\n", s.Crowns)
	fmt.Printf("  Decorative: %d\n", s.Decorative)
	if s.Crowns == 0 {
		fmt.Fprintln(os.Stderr, "Warning: level has no crown; runs cannot be won")
	}
}

func runLevelList(_ *cobra.Command, args []string) error {
	var (
		all []levels.Level
		err error
	)
	if len(args) == 1 {
		all, err = levels.NewLoader(args[0]).LoadAll()
	} else {
		all, err = levels.BuiltinAll()
	}
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No levels found.")
		return nil
	}
	for _, lvl := range all {
		s := lvl.Stats()
		fmt.Printf("  %-16s  %dx%d px  %d tiles  %d crown(s)\n", lvl.ID, lvl.Width, lvl.Height, s.Tiles, s.Crowns)
	}
	return nil
}
