// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is a rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is an axis-aligned bounding box in world units (pixels).
// Physics runs on RectF; only rendering converts to cells.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a world-space rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports a strictly positive overlap; touching edges do not count.
func (r RectF) Intersects(other RectF) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Overlap holds the penetration depth of a moving box into a static one,
// measured from each side of the static box.
type Overlap struct {
	Bottom float64 // moving box's bottom below the static top
	Top    float64 // static bottom below the moving box's top
	Right  float64 // moving box's right edge past the static left
	Left   float64 // static right edge past the moving box's left
}

// Overlaps returns the four directional depths of r into static.
// Values are only meaningful when the rectangles intersect.
func (r RectF) Overlaps(static RectF) Overlap {
	return Overlap{
		Bottom: r.Bottom() - static.Y,
		Top:    static.Bottom() - r.Y,
		Right:  r.Right() - static.X,
		Left:   static.Right() - r.X,
	}
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
