// Package config provides YAML-based game configuration loading and
// difficulty management for the game platform.
package config

// JumperConfig contains all configuration for the Jumper Keng platformer.
// Distances are world pixels, times are seconds.
type JumperConfig struct {
	Physics    JumperPhysics    `yaml:"physics"`
	Player     JumperPlayer     `yaml:"player"`
	Animation  JumperAnimation  `yaml:"animation"`
	Ghosts     JumperGhosts     `yaml:"ghosts"`
	Camera     JumperCamera     `yaml:"camera"`
	Scoring    JumperScoring    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// JumperPhysics defines movement parameters for the player.
type JumperPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // px/s^2
	JumpImpulse float64 `yaml:"jump_impulse"` // px/s, negative = up
	MoveSpeed   float64 `yaml:"move_speed"`   // px/s
	MaxJumps    int     `yaml:"max_jumps"`    // jumps allowed before landing
	MoveHold    float64 `yaml:"move_hold"`    // seconds a left/right press keeps moving
}

// JumperPlayer defines the player's size and spawn point.
type JumperPlayer struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// JumperAnimation defines sprite sheet animation timing.
type JumperAnimation struct {
	FrameTime    float64 `yaml:"frame_time"`
	GroundFrames int     `yaml:"ground_frames"`
	GroundRow    int     `yaml:"ground_row"`
	AirFrames    int     `yaml:"air_frames"`
	AirRow       int     `yaml:"air_row"`
}

// JumperGhosts defines the falling ghost attackers.
type JumperGhosts struct {
	Speed          float64 `yaml:"speed"`
	NormalInterval float64 `yaml:"normal_interval"`
	HardInterval   float64 `yaml:"hard_interval"`
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	SpawnWidth     float64 `yaml:"spawn_width"` // ghosts spawn at x in [0, spawn_width)
}

// JumperCamera defines how world pixels map onto terminal cells.
type JumperCamera struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Parallax   float64 `yaml:"parallax"`
}

// JumperScoring defines how a won run is scored.
type JumperScoring struct {
	WinBonus       int `yaml:"win_bonus"`
	CapturePenalty int `yaml:"capture_penalty"`
	TimePenalty    int `yaml:"time_penalty"` // per whole second
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// Progression types.
const (
	ProgressHeight = "height" // tiles climbed above spawn
	ProgressTime   = "time"   // ticks since the run started
	ProgressNone   = "none"
)

// ProgressionConfig defines what drives the difficulty curve.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "height", "time", or "none"
	MaxAt int    `yaml:"max_at"` // tiles or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier    float64 `yaml:"speed_multiplier"`    // Added to ghost speed at max difficulty
	IntervalMultiplier float64 `yaml:"interval_multiplier"` // Spawn rate gain at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps CLI text to a preset. Unknown text yields "" (use config).
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
