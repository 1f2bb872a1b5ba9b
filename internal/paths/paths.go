// Package paths resolves the per-user data directory (~/.keng) and
// expands "~" in user-supplied paths.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DirName is the data directory under the user's home.
const DirName = ".keng"

// Data joins elem onto ~/.keng.
func Data(elem ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("paths: home directory: %w", err)
	}
	return filepath.Join(append([]string{home, DirName}, elem...)...), nil
}

// Expand replaces a leading "~" or "~/" with the home directory.
// Other paths are returned cleaned but otherwise unchanged.
func Expand(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("paths: home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, perm); err != nil {
		return fmt.Errorf("paths: create %s: %w", dir, err)
	}
	return nil
}
