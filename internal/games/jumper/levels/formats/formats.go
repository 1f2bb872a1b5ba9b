// Package formats provides pluggable level file format parsers.
package formats

// Tile ids with gameplay meaning. Every other id is decoration.
const (
	SolidMin = 0
	SolidMax = 20
	CrownID  = 39
)

// Tile is one placed tile. X and Y are world pixels of its top-left corner.
type Tile struct {
	X  int
	Y  int
	ID int
}

// Solid reports whether the tile blocks movement.
func (t Tile) Solid() bool {
	return t.ID >= SolidMin && t.ID <= SolidMax
}

// Crown reports whether touching the tile wins the level.
func (t Tile) Crown() bool {
	return t.ID == CrownID
}

// Level represents a parsed level before defaults are applied.
// Zero sizes mean "derive from the tiles".
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	TileSize int
	SpawnX   float64
	SpawnY   float64
	HasSpawn bool
	Tiles    []Tile
	Metadata map[string]string
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".txt"}
}
