package jumper

import (
	"math/rand"

	"github.com/vovakirdan/keng/internal/config"
	"github.com/vovakirdan/keng/internal/core"
)

// Ghost is a falling attacker.
type Ghost struct {
	X, Y float64
	VY   float64
}

// Attacker spawns ghosts on a timer and moves them down the level.
type Attacker struct {
	ghosts     []Ghost
	rng        *rand.Rand
	cfg        config.JumperGhosts
	difficulty *config.DifficultyManager
	interval   float64 // base seconds between spawns for the current mode
	elapsed    float64 // seconds since the last spawn
	floorY     float64 // ghosts at or below this y are removed
	spawned    int
}

// NewAttacker creates an attacker for a level of the given height.
func NewAttacker(seed int64, cfg config.JumperGhosts, diff *config.DifficultyManager, mode Mode, levelHeight float64) *Attacker {
	a := &Attacker{
		ghosts:     make([]Ghost, 0, 16),
		cfg:        cfg,
		difficulty: diff,
		floorY:     levelHeight,
	}
	a.Reset(seed, mode)
	return a
}

// Reset clears all ghosts, reseeds the RNG and picks the mode's interval.
func (a *Attacker) Reset(seed int64, mode Mode) {
	a.ghosts = a.ghosts[:0]
	a.rng = rand.New(rand.NewSource(seed))
	a.elapsed = 0
	a.spawned = 0
	a.interval = a.cfg.NormalInterval
	if mode == ModeHard {
		a.interval = a.cfg.HardInterval
	}
}

// Update advances the spawn timer and moves every ghost by dt seconds.
// prog drives difficulty scaling. It returns the number of ghosts that
// caught the player this frame; caught ghosts are removed.
func (a *Attacker) Update(dt float64, p *Player, prog config.Progress) (spawned bool, caught int) {
	speed, interval := a.difficulty.At(prog).Apply(a.cfg.Speed, a.interval)
	a.elapsed += dt
	if a.elapsed >= interval {
		a.elapsed = 0
		a.spawn(speed)
		spawned = true
	}

	kept := a.ghosts[:0]
	for _, g := range a.ghosts {
		g.Y += g.VY * dt
		switch {
		case a.rect(g).Intersects(p.Rect()):
			p.Caught()
			caught++
		case g.Y >= a.floorY:
			// fell out of the level
		default:
			kept = append(kept, g)
		}
	}
	a.ghosts = kept
	return spawned, caught
}

// spawn adds a ghost at a random x along the top edge.
func (a *Attacker) spawn(speed float64) {
	width := a.cfg.SpawnWidth
	if width <= 0 {
		width = 1
	}
	a.ghosts = append(a.ghosts, Ghost{
		X:  a.rng.Float64() * width,
		Y:  0,
		VY: speed,
	})
	a.spawned++
}

// rect returns a ghost's hitbox.
func (a *Attacker) rect(g Ghost) core.RectF {
	return core.NewRectF(g.X, g.Y, a.cfg.Width, a.cfg.Height)
}

// Ghosts returns a copy of the live ghosts.
func (a *Attacker) Ghosts() []Ghost {
	return append([]Ghost(nil), a.ghosts...)
}

// Spawned returns how many ghosts have been created since the last reset.
func (a *Attacker) Spawned() int {
	return a.spawned
}
