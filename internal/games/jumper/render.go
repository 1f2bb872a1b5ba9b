package jumper

import (
	"fmt"

	"github.com/vovakirdan/keng/internal/core"
	"github.com/vovakirdan/keng/internal/games/jumper/levels"
)

// Visual characters for rendering
const (
	SolidChar  = '█'
	CrownChar  = '♛'
	GrassChar  = '"'
	CloudChar  = '~'
	DecorChar  = '·'
	GhostChar  = 'ᗣ'
	StarChar   = '.'
	PlayerBody = '█'
)

// Animation glyphs for the player's head cell, one per sprite frame.
var (
	groundGlyphs = []rune{'▙', '▟'}
	airGlyphs    = []rune{'⠁', '⠂', '⠄', '⡀', '⢀', '⠠', '⠐', '⠈'}
)

// solidColors tints solid tiles by id.
var solidColors = []core.Color{core.ColorGray, core.ColorGreen, core.ColorOrange, core.ColorBlue}

// tileStyle returns the glyph and color for a tile id.
func tileStyle(t levels.Tile) (rune, core.Color) {
	switch {
	case t.Solid():
		return SolidChar, solidColors[t.ID%len(solidColors)]
	case t.Crown():
		return CrownChar, core.ColorBrightYellow
	case t.ID >= 25 && t.ID < 30:
		return GrassChar, core.ColorBrightGreen
	case t.ID >= 30 && t.ID < 35:
		return CloudChar, core.ColorWhite
	default:
		return DecorChar, core.ColorGray
	}
}

// Render draws the current session screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	switch g.state {
	case StateExit:
		return
	case StateMenu:
		g.drawWorld(dst)
		g.drawButtons(dst, "JUMPER KENG", fmt.Sprintf("Mode: %s", g.mode))
	case StatePlaying:
		g.drawWorld(dst)
		g.drawHUD(dst)
		if g.paused {
			g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
		}
	case StateWon:
		g.drawWorld(dst)
		g.drawButtons(dst, "YOU WIN!", fmt.Sprintf("Score: %d  Caught: %d  Time: %ds",
			g.score, g.captures, g.runSeconds()))
	}
}

// drawWorld draws the parallax background, tiles, ghosts and player.
func (g *Game) drawWorld(dst *core.Screen) {
	g.drawBackground(dst)

	for _, t := range g.level.Tiles() {
		size := float64(g.level.TileSize)
		r := g.camera.ToScreen(core.NewRectF(float64(t.X), float64(t.Y), size, size))
		ch, color := tileStyle(t)
		dst.DrawRectColored(r, ch, color)
	}

	for _, gh := range g.attacker.ghosts {
		r := g.camera.ToScreen(g.attacker.rect(gh))
		dst.DrawRectColored(r, GhostChar, core.ColorBrightMagenta)
	}

	g.drawPlayer(dst)
}

// drawBackground scatters stars that scroll slower than the world.
func (g *Game) drawBackground(dst *core.Screen) {
	dx, dy := g.camera.ParallaxOffset(g.cfg.Camera.Parallax)
	for y := 0; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			if starAt(x+dx, y+dy) {
				dst.SetColored(x, y, StarChar, core.ColorGray)
			}
		}
	}
}

// starAt is a fixed pseudo-random star field.
func starAt(x, y int) bool {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	return h%41 == 0
}

// drawPlayer draws the player with its animation frame on the facing side.
func (g *Game) drawPlayer(dst *core.Screen) {
	r := g.camera.ToScreen(g.player.Rect())
	dst.DrawRectColored(r, PlayerBody, core.ColorBrightCyan)

	glyphs := airGlyphs
	if g.player.FrameRow == g.cfg.Animation.GroundRow {
		glyphs = groundGlyphs
	}
	head := r.X
	if g.player.Facing == FacingRight {
		head = r.Right() - 1
	}
	dst.SetColored(head, r.Y, glyphs[g.player.Frame%len(glyphs)], core.ColorBrightWhite)
}

// drawHUD draws the status line.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Y: %d  Caught: %d  Mode: %s  Time: %ds ",
		int(g.player.Y)/100, g.captures, g.mode, g.runSeconds())
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)
}

// drawButtons draws a box with a title, a subtitle and the current buttons.
func (g *Game) drawButtons(dst *core.Screen, title, subtitle string) {
	btns := g.menu.Buttons(g.state)

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 6
	for _, b := range btns {
		boxW = max(boxW, len(b.Label())+8)
	}
	box := centeredBox(dst, boxW, 5+len(btns))

	dst.DrawPanel(box)
	dst.DrawTextIn(box, 1, title, core.ColorBrightYellow)
	dst.DrawTextIn(box, 2, subtitle, core.ColorDefault)

	for i, b := range btns {
		label := "  " + b.Label() + "  "
		color := core.ColorDefault
		if i == g.menu.Cursor {
			label = "> " + b.Label() + " <"
			color = core.ColorBrightCyan
		}
		dst.DrawTextIn(box, 4+i, label, color)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	box := centeredBox(dst, max(len([]rune(title)), len([]rune(subtitle)))+4, 5)
	dst.DrawPanel(box)
	dst.DrawTextIn(box, 1, title, core.ColorDefault)
	dst.DrawTextIn(box, 3, subtitle, core.ColorDefault)
}

// centeredBox returns a w x h rectangle in the middle of dst.
func centeredBox(dst *core.Screen, w, h int) core.Rect {
	return core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
}
