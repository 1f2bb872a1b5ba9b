package jumper

import (
	"github.com/vovakirdan/keng/internal/config"
	"github.com/vovakirdan/keng/internal/core"
)

// Facing is the horizontal direction the player sprite points.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Player is the controllable character. Position is the top-left corner of
// its hitbox in world pixels.
type Player struct {
	X, Y      float64
	VX, VY    float64
	Grounded  bool
	JumpCount int
	Facing    Facing

	Frame    int // current animation frame within the row
	FrameRow int // sprite sheet row (ground or air cycle)
	animTime float64

	physics config.JumperPhysics
	anim    config.JumperAnimation
	w, h    float64
	spawnX  float64
	spawnY  float64
}

// NewPlayer creates a player standing at the spawn point.
func NewPlayer(cfg config.JumperConfig, spawnX, spawnY float64) *Player {
	p := &Player{
		physics: cfg.Physics,
		anim:    cfg.Animation,
		w:       cfg.Player.Width,
		h:       cfg.Player.Height,
		spawnX:  spawnX,
		spawnY:  spawnY,
	}
	p.X, p.Y = spawnX, spawnY
	p.FrameRow = cfg.Animation.GroundRow
	return p
}

// Rect returns the player's hitbox.
func (p *Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.w, p.h)
}

// Update integrates gravity and velocity over dt seconds and advances the
// animation.
func (p *Player) Update(dt float64) {
	if !p.Grounded {
		p.VY += p.physics.Gravity * dt
	}
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.updateAnimation(dt)
}

// Jump starts a jump if the player has jumps left.
func (p *Player) Jump() bool {
	if p.JumpCount >= p.physics.MaxJumps {
		return false
	}
	p.VY = p.physics.JumpImpulse
	p.Grounded = false
	p.JumpCount++
	return true
}

// MoveLeft starts running left.
func (p *Player) MoveLeft() {
	p.VX = -p.physics.MoveSpeed
	p.Facing = FacingLeft
}

// MoveRight starts running right.
func (p *Player) MoveRight() {
	p.VX = p.physics.MoveSpeed
	p.Facing = FacingRight
}

// Stop halts horizontal movement.
func (p *Player) Stop() {
	p.VX = 0
}

// Caught sends the player back to the spawn point.
func (p *Player) Caught() {
	p.X, p.Y = p.spawnX, p.spawnY
	p.VX, p.VY = 0, 0
	p.JumpCount = 0
	p.Grounded = false
}

// updateAnimation steps to the next frame every frame_time seconds, cycling
// the ground row while grounded and the air row otherwise.
func (p *Player) updateAnimation(dt float64) {
	p.animTime += dt
	if p.animTime < p.anim.FrameTime {
		return
	}
	p.animTime = 0

	frames, row := p.anim.AirFrames, p.anim.AirRow
	if p.Grounded {
		frames, row = p.anim.GroundFrames, p.anim.GroundRow
	}
	if frames <= 0 {
		frames = 1
	}
	p.Frame = (p.Frame + 1) % frames
	p.FrameRow = row
}
