package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default Jumper Keng configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		Physics: JumperPhysics{
			Gravity:     981,
			JumpImpulse: -600,
			MoveSpeed:   200,
			MaxJumps:    2,
			MoveHold:    0.15,
		},
		Player: JumperPlayer{
			SpawnX: 1,
			SpawnY: 1100,
			Width:  32,
			Height: 32,
		},
		Animation: JumperAnimation{
			FrameTime:    0.1,
			GroundFrames: 2,
			GroundRow:    0,
			AirFrames:    8,
			AirRow:       5,
		},
		Ghosts: JumperGhosts{
			Speed:          200,
			NormalInterval: 1.0,
			HardInterval:   0.5,
			Width:          32,
			Height:         32,
			SpawnWidth:     800,
		},
		Camera: JumperCamera{
			CellWidth:  16,
			CellHeight: 32,
			Parallax:   0.5,
		},
		Scoring: JumperScoring{
			WinBonus:       1000,
			CapturePenalty: 50,
			TimePenalty:    1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  ProgressHeight,
				MaxAt: 32, // tiles climbed
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:    0.5,
				IntervalMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "jumper":
		return defaultJumperYAML
	default:
		return nil
	}
}
