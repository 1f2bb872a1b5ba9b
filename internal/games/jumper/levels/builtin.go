package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/keng/internal/games/jumper/levels/formats"
)

// DefaultID names the level played when none is chosen.
const DefaultID = "keng"

//go:embed data/*.yaml
var builtinFS embed.FS

// Default returns the built-in default level.
func Default() (Level, error) {
	return Builtin(DefaultID)
}

// Builtin returns an embedded level by ID.
func Builtin(id string) (Level, error) {
	all, err := BuiltinAll()
	if err != nil {
		return Level{}, err
	}
	for _, lvl := range all {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// BuiltinAll parses every embedded level, sorted by ID.
func BuiltinAll() ([]Level, error) {
	entries, err := fs.ReadDir(builtinFS, "data")
	if err != nil {
		return nil, fmt.Errorf("read embedded levels: %w", err)
	}

	var out []Level
	for _, e := range entries {
		name := e.Name()
		data, err := builtinFS.ReadFile(path.Join("data", name))
		if err != nil {
			return nil, fmt.Errorf("read embedded level %s: %w", name, err)
		}
		parsed, err := formats.ParseYAML(data, DefaultTileSize)
		if err != nil {
			return nil, fmt.Errorf("parse embedded level %s: %w", name, err)
		}
		if parsed.ID == "" {
			parsed.ID = strings.TrimSuffix(name, path.Ext(name))
		}
		out = append(out, newLevel(parsed))
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}
