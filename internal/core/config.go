package core

import "time"

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // simulation steps per second
	Seed     int64 // 0 picks a time-based seed in Normalize
}

const defaultTickRate = 60

// Normalize fills in a tick rate and seed when they are unset.
func (c RuntimeConfig) Normalize() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = defaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// DeltaTime is the fixed step length in seconds.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / defaultTickRate
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the part of a game the platform acts on.
type GameState struct {
	Score    int
	GameOver bool // the run has ended and Score is final
	Paused   bool
	Exit     bool // the game wants the platform to close it
}

// StepResult is what Step reports after one tick.
type StepResult struct {
	State GameState
}
