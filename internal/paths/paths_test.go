package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		in, want string
	}{
		{"~", home},
		{"~/keng.db", filepath.Join(home, "keng.db")},
		{"~/.keng/logs/x.log", filepath.Join(home, ".keng", "logs", "x.log")},
		{"/tmp/keng.db", "/tmp/keng.db"},
		{"rel/keng.db", "rel/keng.db"},
		{"~other/keng.db", "~other/keng.db"},
	}
	for _, tt := range tests {
		got, err := Expand(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestData(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Data("configs", "jumper.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".keng", "configs", "jumper.yaml"), got)

	root, err := Data()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".keng"), root)
}

func TestEnsureParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "host_key")
	require.NoError(t, EnsureParent(path, 0o700))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
