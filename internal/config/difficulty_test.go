package config

import (
	"math"
	"testing"
)

func TestDifficultyDisabledUsesInitialLevel(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.InitialLevel = 0.4
	dm := NewDifficultyManager(cfg)

	if dm.IsEnabled() {
		t.Fatal("default difficulty should be disabled")
	}
	if got := dm.Level(Progress{Height: 50, Ticks: 100000}); got != 0.4 {
		t.Errorf("Level = %v, want 0.4", got)
	}
}

func TestDifficultyProgression(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		maxAt int
		p     Progress
		want  float64
	}{
		{"time start", ProgressTime, 7200, Progress{Ticks: 0}, 0.0},
		{"time half", ProgressTime, 7200, Progress{Ticks: 3600}, 0.5},
		{"time max", ProgressTime, 7200, Progress{Ticks: 7200}, 1.0},
		{"time past max", ProgressTime, 7200, Progress{Ticks: 99999}, 1.0},
		{"time ignores height", ProgressTime, 7200, Progress{Height: 30}, 0.0},
		{"height quarter", ProgressHeight, 32, Progress{Height: 8, Ticks: 7200}, 0.25},
		{"height max", ProgressHeight, 32, Progress{Height: 40}, 1.0},
		{"zero max_at", ProgressHeight, 0, Progress{Height: 1}, 1.0},
		{"none", ProgressNone, 7200, Progress{Ticks: 7200}, 0.0},
		{"unknown type", "score", 7200, Progress{Ticks: 7200}, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultJumperConfig().Difficulty
			cfg.Enabled = true
			cfg.Progression = ProgressionConfig{Type: tt.typ, MaxAt: tt.maxAt}
			dm := NewDifficultyManager(cfg)

			if got := dm.Level(tt.p); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Level(%+v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestDefaultProgressionIsHeight(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	if cfg.Progression.Type != ProgressHeight {
		t.Errorf("Progression.Type = %q, want %q", cfg.Progression.Type, ProgressHeight)
	}

	cfg.Enabled = true
	dm := NewDifficultyManager(cfg)
	if got := dm.Level(Progress{Ticks: 100000}); got != 0 {
		t.Errorf("ticks alone raised the level to %v", got)
	}
}

func TestDifficultyInterpolatesFromInitialLevel(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.Enabled = true
	cfg.InitialLevel = 0.5
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(Progress{Height: 16}); math.Abs(got-0.75) > 1e-9 {
		t.Errorf("Level = %v, want 0.75", got)
	}
}

func TestDifficultyScaleApply(t *testing.T) {
	cfg := DefaultJumperConfig().Difficulty
	cfg.Enabled = true
	dm := NewDifficultyManager(cfg)

	// At max level: speed * 1.5, interval / 2
	speed, interval := dm.At(Progress{Height: 32}).Apply(200, 1.0)
	if math.Abs(speed-300) > 1e-9 {
		t.Errorf("speed = %v, want 300", speed)
	}
	if math.Abs(interval-0.5) > 1e-9 {
		t.Errorf("interval = %v, want 0.5", interval)
	}

	// At level 0 nothing changes.
	speed, interval = dm.At(Progress{}).Apply(200, 1.0)
	if speed != 200 || interval != 1.0 {
		t.Errorf("level 0 scaled to %v, %v", speed, interval)
	}
}

func TestDifficultyInitialLevelClamps(t *testing.T) {
	tests := []struct {
		initial float64
		want    float64
	}{
		{3, 1.0},
		{-1, 0.0},
		{0.4, 0.4},
	}
	for _, tt := range tests {
		cfg := DefaultJumperConfig().Difficulty
		cfg.Enabled = false
		cfg.InitialLevel = tt.initial
		dm := NewDifficultyManager(cfg)
		if got := dm.Level(Progress{Height: 500}); got != tt.want {
			t.Errorf("InitialLevel %v: Level = %v, want %v", tt.initial, got, tt.want)
		}
	}
}
