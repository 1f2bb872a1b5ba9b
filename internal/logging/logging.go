// Package logging builds the charmbracelet loggers shared by the CLI, the
// TUI and the SSH server.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/keng/internal/paths"
)

// New returns a timestamped logger writing to w with the given prefix.
// Unknown level names fall back to info.
func New(w io.Writer, prefix, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	l.SetLevel(ParseLevel(level))
	return l
}

// Discard returns a logger that drops everything. The TUI uses it when no
// log file is configured so output never lands on the alternate screen.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// ParseLevel converts a level name to a log.Level, defaulting to info.
func ParseLevel(level string) log.Level {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// OpenFile returns a logger appending to path, creating parent directories.
// The caller closes the returned file.
func OpenFile(path, prefix, level string) (*log.Logger, io.Closer, error) {
	path, err := paths.Expand(path)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	if err := paths.EnsureParent(path, 0o755); err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: open %s: %w", path, err)
	}
	return New(f, prefix, level), f, nil
}
