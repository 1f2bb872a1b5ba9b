package config

import "math"

// Progress is how far a run has come.
type Progress struct {
	Height int // best height climbed above spawn, in tiles
	Ticks  int // simulation ticks since the run started
}

// Scale is the difficulty at one point of a run.
type Scale struct {
	Level    float64 // 0 easiest, 1 hardest
	Speed    float64 // ghost speed multiplier, >= 1
	Interval float64 // spawn interval divisor, >= 1
}

// Apply scales a base ghost speed and spawn interval.
func (s Scale) Apply(speed, interval float64) (float64, float64) {
	return speed * s.Speed, interval / s.Interval
}

// DifficultyManager maps run progress to a Scale. With progression
// disabled every point of the run sits at the initial level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clamp01(cfg.InitialLevel),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != ProgressNone
}

// Level returns the difficulty level in [initial, 1] for p.
func (d *DifficultyManager) Level(p Progress) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var reached int
	switch d.cfg.Progression.Type {
	case ProgressHeight:
		reached = p.Height
	case ProgressTime:
		reached = p.Ticks
	default:
		return d.initialLevel
	}

	maxAt := float64(max(d.cfg.Progression.MaxAt, 1))
	t := clamp01(float64(reached) / maxAt)
	return d.initialLevel + t*(1-d.initialLevel)
}

// At returns the full scale for p. Speed grows to 1+speed_multiplier and
// the interval divisor to 1+interval_multiplier at level 1.
func (d *DifficultyManager) At(p Progress) Scale {
	level := d.Level(p)
	return Scale{
		Level:    level,
		Speed:    1 + level*d.cfg.Scaling.SpeedMultiplier,
		Interval: 1 + level*d.cfg.Scaling.IntervalMultiplier,
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
