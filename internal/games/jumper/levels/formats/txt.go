package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// ParseText parses the plain tile list format: one "x y id" triple per line.
// Blank lines and lines starting with '#' are ignored.
func ParseText(data []byte) (Level, error) {
	var level Level

	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 3 {
			return Level{}, fmt.Errorf("line %d: want \"x y id\", got %q", lineNo, line)
		}

		var nums [3]int
		for i, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return Level{}, fmt.Errorf("line %d: %w", lineNo, err)
			}
			nums[i] = n
		}
		level.Tiles = append(level.Tiles, Tile{X: nums[0], Y: nums[1], ID: nums[2]})
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("scan: %w", err)
	}

	return level, nil
}

// FormatText writes tiles in the plain tile list format.
func FormatText(tiles []Tile) []byte {
	var buf bytes.Buffer
	for _, t := range tiles {
		fmt.Fprintf(&buf, "%d %d %d\n", t.X, t.Y, t.ID)
	}
	return buf.Bytes()
}
