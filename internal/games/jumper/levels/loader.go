package levels

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vovakirdan/keng/internal/games/jumper/levels/formats"
)

// ErrNotFound is returned when no level matches a requested ID.
var ErrNotFound = errors.New("level not found")

// Loader reads every level file under a directory tree.
type Loader struct {
	Root string
}

// NewLoader returns a loader rooted at dir.
func NewLoader(dir string) *Loader {
	return &Loader{Root: dir}
}

// LoadAll parses every supported file under Root, sorted by ID. Files that
// fail to parse are skipped; use LoadFile to see why.
func (l *Loader) LoadAll() ([]Level, error) {
	var found []Level
	walk := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}
		if lvl, err := LoadFile(path); err == nil {
			found = append(found, lvl)
		}
		return nil
	}
	if err := filepath.WalkDir(l.Root, walk); err != nil {
		return nil, fmt.Errorf("levels: scan %s: %w", l.Root, err)
	}

	slices.SortFunc(found, func(a, b Level) int {
		return strings.Compare(a.ID, b.ID)
	})
	return found, nil
}

// Find returns the level with the given ID, or ErrNotFound.
func (l *Loader) Find(id string) (Level, error) {
	all, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	if i := slices.IndexFunc(all, func(lvl Level) bool { return lvl.ID == id }); i >= 0 {
		return all[i], nil
	}
	return Level{}, fmt.Errorf("%w: %q in %s", ErrNotFound, id, l.Root)
}

// LoadFile loads a single level file. Files without an id take their
// base name as the ID.
func LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	if parsed.ID == "" {
		parsed.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	lvl := newLevel(parsed)
	lvl.FilePath = path
	return lvl, nil
}

// Resolve loads the level named by ref. An empty ref is the built-in
// default; a file is loaded directly; a directory yields its first level
// by ID. Anything else is looked up among the built-in levels.
func Resolve(ref string) (Level, error) {
	if ref == "" {
		return Default()
	}

	info, err := os.Stat(ref)
	switch {
	case err == nil && info.IsDir():
		lvls, err := NewLoader(ref).LoadAll()
		if err != nil {
			return Level{}, err
		}
		if len(lvls) == 0 {
			return Level{}, fmt.Errorf("%w: no levels in %s", ErrNotFound, ref)
		}
		return lvls[0], nil
	case err == nil:
		return LoadFile(ref)
	}

	return Builtin(ref)
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), ext)
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data, DefaultTileSize)
	case ".txt":
		return formats.ParseText(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
