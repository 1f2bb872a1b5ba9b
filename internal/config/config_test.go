package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg JumperConfig
	require.NoError(t, yaml.Unmarshal(GetDefaultYAML("jumper"), &cfg))
	assert.Equal(t, DefaultJumperConfig(), cfg)
}

func TestGetDefaultYAMLUnknown(t *testing.T) {
	assert.Nil(t, GetDefaultYAML("flappy"))
}

func TestLoadJumperCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jumper.yaml")
	data := []byte("physics:\n  gravity: 500\nghosts:\n  speed: 50\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadJumper(path)
	require.NoError(t, err)

	assert.Equal(t, 500.0, cfg.Physics.Gravity)
	assert.Equal(t, 50.0, cfg.Ghosts.Speed)
	// Untouched keys keep their defaults.
	assert.Equal(t, -600.0, cfg.Physics.JumpImpulse)
	assert.Equal(t, 2, cfg.Physics.MaxJumps)
}

func TestLoadJumperMissingCustomPath(t *testing.T) {
	_, err := LoadJumper(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadJumperBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("physics: [1, 2"), 0o644))

	_, err := LoadJumper(path)
	assert.Error(t, err)
}

func TestResolveJumperSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	_, src, err := ResolveJumper("")
	require.NoError(t, err)
	assert.Equal(t, SourceEmbedded, src)

	require.NoError(t, os.MkdirAll("configs", 0o755))
	require.NoError(t, os.WriteFile(filepath.Join("configs", "jumper.yaml"), []byte("ghosts:\n  speed: 11\n"), 0o644))
	cfg, src, err := ResolveJumper("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "jumper.yaml"), src)
	assert.Equal(t, 11.0, cfg.Ghosts.Speed)

	userDir := filepath.Join(home, ".keng", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	userPath := filepath.Join(userDir, "jumper.yaml")

	// A broken user file is skipped in favor of the next candidate.
	require.NoError(t, os.WriteFile(userPath, []byte("ghosts: [oops"), 0o644))
	_, src, err = ResolveJumper("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("configs", "jumper.yaml"), src)

	require.NoError(t, os.WriteFile(userPath, []byte("ghosts:\n  speed: 22\n"), 0o644))
	cfg, src, err = ResolveJumper("")
	require.NoError(t, err)
	assert.Equal(t, userPath, src)
	assert.Equal(t, 22.0, cfg.Ghosts.Speed)
}

func TestApplyJumperPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		enabled  bool
		level    float64
		maxJumps int
	}{
		{DifficultyEasy, true, 0.0, 3},
		{DifficultyNormal, true, 0.3, 2},
		{DifficultyHard, true, 0.7, 2},
		{DifficultyFixed, false, 0.0, 2},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultJumperConfig()
			ApplyJumperPreset(&cfg, tt.preset)
			assert.Equal(t, tt.enabled, cfg.Difficulty.Enabled)
			assert.InDelta(t, tt.level, cfg.Difficulty.InitialLevel, 1e-9)
			assert.Equal(t, tt.maxJumps, cfg.Physics.MaxJumps)
		})
	}
}

func TestApplyJumperPresetEmpty(t *testing.T) {
	cfg := DefaultJumperConfig()
	ApplyJumperPreset(&cfg, "")
	assert.Equal(t, DefaultJumperConfig(), cfg)
}

func TestParsePreset(t *testing.T) {
	assert.Equal(t, DifficultyHard, ParsePreset("hard"))
	assert.Equal(t, DifficultyPreset(""), ParsePreset("insane"))
	assert.True(t, IsFixedPreset(ParsePreset("fixed")))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("KENG_DB", "/tmp/keng-test.db")
	t.Setenv("KENG_FPS", "30")
	t.Setenv("KENG_LOG_LEVEL", "debug")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/keng-test.db", e.DBPath)
	assert.Equal(t, 30, e.FPS)
	assert.Equal(t, "debug", e.LogLevel)
	assert.Equal(t, ":23234", e.SSHAddr)
}

func TestLoadEnvBadFPS(t *testing.T) {
	t.Setenv("KENG_FPS", "fast")

	_, err := LoadEnv()
	assert.Error(t, err)
}
