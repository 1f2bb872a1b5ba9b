package jumper

import "github.com/vovakirdan/keng/internal/core"

// Side identifies which face of a solid the player was pushed out of.
type Side int

const (
	SideNone   Side = iota
	SideBottom      // landed on top of the solid
	SideTop         // bumped the solid's underside
	SideRight       // pushed back out of its left face
	SideLeft        // pushed back out of its right face
)

// ResolveCollision pushes the player out of solid along the axis of least
// penetration. Equal depths resolve in the order bottom, top, right, left.
func ResolveCollision(p *Player, solid core.RectF) Side {
	box := p.Rect()
	if !box.Intersects(solid) {
		return SideNone
	}

	o := box.Overlaps(solid)
	switch {
	case o.Bottom <= o.Top && o.Bottom <= o.Right && o.Bottom <= o.Left:
		p.Y = solid.Y - box.H
		p.VY = 0
		p.Grounded = true
		p.JumpCount = 0
		return SideBottom
	case o.Top <= o.Right && o.Top <= o.Left:
		p.Y = solid.Bottom()
		p.VY = 0
		return SideTop
	case o.Right <= o.Left:
		p.X = solid.X - box.W
		return SideRight
	default:
		p.X = solid.Right()
		return SideLeft
	}
}

// ResolveAll resolves the player against every solid in order.
// It returns how many solids were touched.
func ResolveAll(p *Player, solids []core.RectF) int {
	hits := 0
	for _, s := range solids {
		if ResolveCollision(p, s) != SideNone {
			hits++
		}
	}
	return hits
}

// Supported reports whether a solid sits directly under the player's feet.
// Resting contact does not count as overlap, so this checks a 1px strip
// below the hitbox.
func Supported(p *Player, solids []core.RectF) bool {
	box := p.Rect()
	feet := core.NewRectF(box.X, box.Bottom(), box.W, 1)
	for _, s := range solids {
		if feet.Intersects(s) {
			return true
		}
	}
	return false
}
