package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/keng/internal/paths"
)

const jumperFile = "jumper.yaml"

// SourceEmbedded is the source ResolveJumper reports for the built-in default.
const SourceEmbedded = "embedded"

// LoadJumper returns the Jumper Keng config. See ResolveJumper.
func LoadJumper(customPath string) (JumperConfig, error) {
	cfg, _, err := ResolveJumper(customPath)
	return cfg, err
}

// ResolveJumper loads the config and reports which file it came from.
//
// A non-empty customPath must exist and parse. Otherwise the first readable
// and valid file among ~/.keng/configs/jumper.yaml and ./configs/jumper.yaml
// wins, with the embedded default last. Files override the defaults field by
// field, so a partial file only changes what it names.
func ResolveJumper(customPath string) (JumperConfig, string, error) {
	if customPath != "" {
		cfg, err := readJumper(customPath)
		if err != nil {
			return DefaultJumperConfig(), "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := readJumper(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg := DefaultJumperConfig()
	if err := yaml.Unmarshal(defaultJumperYAML, &cfg); err != nil {
		return DefaultJumperConfig(), SourceEmbedded, nil
	}
	return cfg, SourceEmbedded, nil
}

func searchPaths() []string {
	var out []string
	if p, err := paths.Data("configs", jumperFile); err == nil {
		out = append(out, p)
	}
	return append(out, filepath.Join("configs", jumperFile))
}

func readJumper(path string) (JumperConfig, error) {
	cfg := DefaultJumperConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: %s does not exist", path)
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultJumperConfig(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyJumperPreset adjusts cfg for a difficulty preset. An empty preset
// leaves it alone.
func ApplyJumperPreset(cfg *JumperConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Easy also gives an extra air jump.
	if preset == DifficultyEasy {
		cfg.Physics.MaxJumps = 3
	}
}
