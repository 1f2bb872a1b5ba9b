package formats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseText(t *testing.T) {
	data := []byte("# floor\n0 1152 1\n\n32 1152 2\n  64 96 39  \n")

	lvl, err := ParseText(data)
	require.NoError(t, err)
	require.Len(t, lvl.Tiles, 3)
	assert.Equal(t, Tile{X: 0, Y: 1152, ID: 1}, lvl.Tiles[0])
	assert.True(t, lvl.Tiles[2].Crown())
	assert.False(t, lvl.Tiles[2].Solid())
}

func TestParseTextErrors(t *testing.T) {
	tests := map[string]string{
		"too few":  "0 1152\n",
		"too many": "0 1152 1 9\n",
		"not int":  "0 x 1\n",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseText([]byte(in))
			assert.ErrorContains(t, err, "line 1")
		})
	}
}

func TestFormatTextRoundTrip(t *testing.T) {
	tiles := []Tile{{0, 0, 1}, {32, 64, 39}}
	lvl, err := ParseText(FormatText(tiles))
	require.NoError(t, err)
	assert.Equal(t, tiles, lvl.Tiles)
}

func TestParseYAMLRowsAndTiles(t *testing.T) {
	data := []byte(`
id: tiny
name: Tiny
tile_size: 16
spawn: {x: 3, y: 4}
legend:
  "#": 1
  "C": 39
rows:
  - "..C"
  - "###"
tiles:
  - {x: 100, y: 200, id: 25}
`)
	lvl, err := ParseYAML(data, 32)
	require.NoError(t, err)

	assert.Equal(t, "tiny", lvl.ID)
	assert.Equal(t, 16, lvl.TileSize)
	assert.True(t, lvl.HasSpawn)
	assert.Equal(t, 3.0, lvl.SpawnX)
	assert.Equal(t, []Tile{
		{X: 32, Y: 0, ID: 39},
		{X: 0, Y: 16, ID: 1},
		{X: 16, Y: 16, ID: 1},
		{X: 32, Y: 16, ID: 1},
		{X: 100, Y: 200, ID: 25},
	}, lvl.Tiles)
}

func TestParseYAMLDefaultTileSize(t *testing.T) {
	lvl, err := ParseYAML([]byte("legend: {\"#\": 3}\nrows: [\".#\"]\n"), 32)
	require.NoError(t, err)
	assert.Equal(t, []Tile{{X: 32, Y: 0, ID: 3}}, lvl.Tiles)
	assert.False(t, lvl.HasSpawn)
}

func TestParseYAMLErrors(t *testing.T) {
	tests := map[string]string{
		"unknown glyph": "legend: {\"#\": 1}\nrows: [\"#X\"]\n",
		"long key":      "legend: {\"##\": 1}\nrows: [\"#\"]\n",
		"bad yaml":      "rows: [\"#\"",
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseYAML([]byte(in), 32)
			assert.Error(t, err)
		})
	}
}
