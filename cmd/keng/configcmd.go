package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keng/internal/config"
)

var (
	flagConfigResolved   bool
	flagConfigPath       string
	flagConfigDifficulty string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game config",
	Long: `Print the embedded default config for Jumper Keng. Save it to
~/.keng/configs/jumper.yaml or ./configs/jumper.yaml to customize the game.

With --resolved, print the config a session would actually use after the
search order and difficulty preset are applied.

Examples:
  keng config > ~/.keng/configs/jumper.yaml
  keng config --resolved --difficulty easy
  keng config --resolved --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigResolved, "resolved", false, "Print the effective config instead of the default file")
	configCmd.Flags().StringVar(&flagConfigPath, "config", "", "Custom config YAML to resolve")
	configCmd.Flags().StringVar(&flagConfigDifficulty, "difficulty", "", "Difficulty preset to apply")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if !flagConfigResolved {
		_, err := os.Stdout.Write(config.GetDefaultYAML("jumper"))
		return err
	}

	cfg, source, err := config.ResolveJumper(flagConfigPath)
	if err != nil {
		return err
	}
	if flagConfigDifficulty != "" {
		preset := config.ParsePreset(flagConfigDifficulty)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagConfigDifficulty)
		}
		config.ApplyJumperPreset(&cfg, preset)
	}

	fmt.Printf("# source: %s\n", source)
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}
