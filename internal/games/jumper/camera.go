package jumper

import (
	"math"

	"github.com/vovakirdan/keng/internal/core"
)

// Camera maps world pixels onto screen cells. Each cell covers cellW×cellH
// pixels, so the view size follows the terminal size.
type Camera struct {
	CenterX, CenterY float64
	cellW, cellH     float64
	cols, rows       int
}

// NewCamera creates a camera for a cols×rows cell viewport.
func NewCamera(cols, rows int, cellW, cellH float64) *Camera {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Camera{cellW: cellW, cellH: cellH, cols: cols, rows: rows}
}

// ViewSize returns the visible world area in pixels.
func (c *Camera) ViewSize() (w, h float64) {
	return float64(c.cols) * c.cellW, float64(c.rows) * c.cellH
}

// Follow centers the view on (x, y), clamped so the view never leaves
// bounds. A view larger than the level on an axis is centered on it.
func (c *Camera) Follow(x, y float64, bounds core.RectF) {
	vw, vh := c.ViewSize()
	c.CenterX = clampAxis(x, vw, bounds.X, bounds.W)
	c.CenterY = clampAxis(y, vh, bounds.Y, bounds.H)
}

func clampAxis(v, view, origin, size float64) float64 {
	if view >= size {
		return origin + size/2
	}
	return core.ClampF(v, origin+view/2, origin+size-view/2)
}

// TopLeft returns the world position of the view's top-left corner.
func (c *Camera) TopLeft() (x, y float64) {
	vw, vh := c.ViewSize()
	return c.CenterX - vw/2, c.CenterY - vh/2
}

// ToScreen converts a world rectangle to the cell rectangle it covers.
func (c *Camera) ToScreen(r core.RectF) core.Rect {
	left, top := c.TopLeft()
	x0 := int(math.Floor((r.X - left) / c.cellW))
	y0 := int(math.Floor((r.Y - top) / c.cellH))
	x1 := int(math.Ceil((r.Right() - left) / c.cellW))
	y1 := int(math.Ceil((r.Bottom() - top) / c.cellH))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// ParallaxOffset returns the cell offset of a background layer scrolling at
// factor times the camera speed.
func (c *Camera) ParallaxOffset(factor float64) (dx, dy int) {
	left, top := c.TopLeft()
	return int(math.Floor(left * factor / c.cellW)), int(math.Floor(top * factor / c.cellH))
}
