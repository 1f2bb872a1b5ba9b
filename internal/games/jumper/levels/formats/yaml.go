package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
// A level may draw tiles with rows and a legend, list them explicitly, or both.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	TileSize int               `yaml:"tile_size,omitempty"`
	Size     YAMLSize          `yaml:"size,omitempty"`
	Spawn    *YAMLPoint        `yaml:"spawn,omitempty"`
	Legend   map[string]int    `yaml:"legend,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"`
	Tiles    []YAMLTile        `yaml:"tiles,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents world dimensions in pixels.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPoint is a world position in pixels.
type YAMLPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// YAMLTile represents a single explicitly placed tile.
type YAMLTile struct {
	X  int `yaml:"x"`
	Y  int `yaml:"y"`
	ID int `yaml:"id"`
}

// ParseYAML parses a YAML level file.
// tileSize is used for rows when the file does not set tile_size.
func ParseYAML(data []byte, tileSize int) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.TileSize > 0 {
		tileSize = yl.TileSize
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		TileSize: yl.TileSize,
		Metadata: yl.Metadata,
	}
	if yl.Spawn != nil {
		level.SpawnX = yl.Spawn.X
		level.SpawnY = yl.Spawn.Y
		level.HasSpawn = true
	}

	legend := make(map[rune]int, len(yl.Legend))
	for k, id := range yl.Legend {
		r := []rune(k)
		if len(r) != 1 {
			return Level{}, fmt.Errorf("legend key %q must be a single character", k)
		}
		legend[r[0]] = id
	}

	for row, line := range yl.Rows {
		for col, ch := range []rune(line) {
			if ch == '.' || ch == ' ' {
				continue
			}
			id, ok := legend[ch]
			if !ok {
				return Level{}, fmt.Errorf("row %d col %d: %q not in legend", row, col, ch)
			}
			level.Tiles = append(level.Tiles, Tile{X: col * tileSize, Y: row * tileSize, ID: id})
		}
	}

	for _, t := range yl.Tiles {
		level.Tiles = append(level.Tiles, Tile(t))
	}

	return level, nil
}
