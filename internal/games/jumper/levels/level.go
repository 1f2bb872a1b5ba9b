// Package levels provides level loading for Jumper Keng.
// This package depends on core but the game logic only sees the Level type.
package levels

import (
	"github.com/vovakirdan/keng/internal/core"
	"github.com/vovakirdan/keng/internal/games/jumper/levels/formats"
)

// World defaults used when a level file leaves them out.
const (
	DefaultWidth    = 1600
	DefaultHeight   = 1200
	DefaultTileSize = 32
)

// Tile is one placed tile in world pixels.
type Tile = formats.Tile

// Level is a loaded, immutable level. Collision and goal rectangles are
// derived once when the level is built.
type Level struct {
	ID       string
	Name     string
	Width    int
	Height   int
	TileSize int
	SpawnX   float64
	SpawnY   float64
	HasSpawn bool
	Metadata map[string]string
	FilePath string

	tiles  []Tile
	solids []core.RectF
	crowns []core.RectF
}

// Stats summarizes a level's tile composition.
type Stats struct {
	Tiles      int
	Solid      int
	Crowns     int
	Decorative int
}

// newLevel applies defaults to a parsed level and derives its rectangles.
func newLevel(p formats.Level) Level {
	lvl := Level{
		ID:       p.ID,
		Name:     p.Name,
		Width:    p.Width,
		Height:   p.Height,
		TileSize: p.TileSize,
		SpawnX:   p.SpawnX,
		SpawnY:   p.SpawnY,
		HasSpawn: p.HasSpawn,
		Metadata: p.Metadata,
		tiles:    append([]Tile(nil), p.Tiles...),
	}
	if lvl.TileSize <= 0 {
		lvl.TileSize = DefaultTileSize
	}
	if lvl.Name == "" {
		lvl.Name = lvl.ID
	}

	// Unsized levels get the default world, grown to fit every tile.
	autoW, autoH := lvl.Width <= 0, lvl.Height <= 0
	if autoW {
		lvl.Width = DefaultWidth
	}
	if autoH {
		lvl.Height = DefaultHeight
	}

	size := float64(lvl.TileSize)
	for _, t := range lvl.tiles {
		if autoW {
			lvl.Width = max(lvl.Width, t.X+lvl.TileSize)
		}
		if autoH {
			lvl.Height = max(lvl.Height, t.Y+lvl.TileSize)
		}

		rect := core.NewRectF(float64(t.X), float64(t.Y), size, size)
		switch {
		case t.Solid():
			lvl.solids = append(lvl.solids, rect)
		case t.Crown():
			lvl.crowns = append(lvl.crowns, rect)
		}
	}

	return lvl
}

// Tiles returns a copy of every tile in the level.
func (l Level) Tiles() []Tile {
	return append([]Tile(nil), l.tiles...)
}

// SolidRects returns a copy of the collision rectangles.
func (l Level) SolidRects() []core.RectF {
	return append([]core.RectF(nil), l.solids...)
}

// CrownRects returns a copy of the goal rectangles.
func (l Level) CrownRects() []core.RectF {
	return append([]core.RectF(nil), l.crowns...)
}

// Bounds returns the world rectangle.
func (l Level) Bounds() core.RectF {
	return core.NewRectF(0, 0, float64(l.Width), float64(l.Height))
}

// Stats counts tiles by kind.
func (l Level) Stats() Stats {
	s := Stats{Tiles: len(l.tiles), Solid: len(l.solids), Crowns: len(l.crowns)}
	s.Decorative = s.Tiles - s.Solid - s.Crowns
	return s
}
