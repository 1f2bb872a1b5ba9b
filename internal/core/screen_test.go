package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	// Fill with some characters
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			s.Set(x, y, 'X')
		}
	}

	s.Clear()

	// Should all be spaces now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("After Clear, expected space at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello")

	expected := "Hello"
	for i, ch := range expected {
		if s.Get(2+i, 1) != ch {
			t.Errorf("DrawText: expected %q at (%d, 1), got %q", ch, 2+i, s.Get(2+i, 1))
		}
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello") // Only "He" should fit
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(2, 2, 3, 3)
	s.DrawRect(r, '#')

	// Check filled area
	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("DrawRect: expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}

	// Check outside is still space
	if s.Get(1, 1) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
	if s.Get(5, 5) != ' ' {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	r := NewRect(1, 1, 5, 4)
	s.DrawBox(r)

	// Check corners
	if s.Get(1, 1) != '┌' {
		t.Errorf("Top-left corner should be '┌', got %q", s.Get(1, 1))
	}
	if s.Get(5, 1) != '┐' {
		t.Errorf("Top-right corner should be '┐', got %q", s.Get(5, 1))
	}
	if s.Get(1, 4) != '└' {
		t.Errorf("Bottom-left corner should be '└', got %q", s.Get(1, 4))
	}
	if s.Get(5, 4) != '┘' {
		t.Errorf("Bottom-right corner should be '┘', got %q", s.Get(5, 4))
	}

	// Check horizontal edges
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' {
			t.Errorf("Top edge should be '─' at x=%d, got %q", x, s.Get(x, 1))
		}
		if s.Get(x, 4) != '─' {
			t.Errorf("Bottom edge should be '─' at x=%d, got %q", x, s.Get(x, 4))
		}
	}

	// Check vertical edges
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' {
			t.Errorf("Left edge should be '│' at y=%d, got %q", y, s.Get(1, y))
		}
		if s.Get(5, y) != '│' {
			t.Errorf("Right edge should be '│' at y=%d, got %q", y, s.Get(5, y))
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	result := s.String()
	expected := "AAAAA\nBBBBB\nCCCCC"

	if result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")
	s.DrawText(0, 5, "World")

	// Resize smaller - should preserve top-left content
	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}

	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("Content should be preserved, got %q", s.String())
	}
	if strings.Contains(s.String(), "World") {
		t.Error("Rows past the new height should be dropped")
	}

	// Resize larger - old content should still be there
	s.Resize(15, 8)
	if !strings.HasPrefix(s.String(), "Hello") {
		t.Errorf("Content should be preserved after enlarging, got %q", s.String())
	}
	if s.Get(10, 7) != ' ' {
		t.Error("New area should be blank")
	}
}

func TestScreenColoredCells(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "Hi", ColorBrightYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != 'H' || cell.Color != ColorBrightYellow {
		t.Errorf("GetCell(1, 1) = %+v, expected bright yellow 'H'", cell)
	}

	// Plain Set resets the color
	s.Set(1, 1, 'X')
	if s.GetCell(1, 1).Color != ColorDefault {
		t.Error("Set should draw with the default color")
	}

	// Clear drops colors
	s.Clear()
	if s.GetCell(2, 1).Color != ColorDefault || s.Get(2, 1) != ' ' {
		t.Error("Clear should reset cells to uncolored spaces")
	}

	if got := s.GetCell(-1, 0); got.Rune != ' ' {
		t.Errorf("Out of bounds GetCell should be blank, got %q", got.Rune)
	}
}

func TestScreenDrawPanel(t *testing.T) {
	s := NewScreen(12, 6)
	for y := range 6 {
		s.DrawText(0, y, "############")
	}

	s.DrawPanel(NewRect(2, 1, 6, 4))

	if s.Get(2, 1) != '┌' || s.Get(7, 4) != '┘' {
		t.Errorf("Panel corners missing:\n%s", s.String())
	}
	for y := 2; y < 4; y++ {
		for x := 3; x < 7; x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("Panel interior should be blank at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
	if s.Get(1, 1) != '#' || s.Get(8, 4) != '#' {
		t.Error("DrawPanel should not touch cells outside the rect")
	}
}

func TestScreenDrawTextIn(t *testing.T) {
	s := NewScreen(20, 6)
	box := NewRect(4, 1, 10, 4)

	s.DrawTextIn(box, 2, "Keng", ColorBrightCyan)

	// (10-4)/2 = 3 cells in from the box's left edge
	cell := s.GetCell(7, 3)
	if cell.Rune != 'K' || cell.Color != ColorBrightCyan {
		t.Errorf("GetCell(7, 3) = %+v, expected bright cyan 'K'", cell)
	}
	if s.Get(10, 3) != 'g' {
		t.Errorf("Text should end at x=10, got %q", s.Get(10, 3))
	}

	// Wider than the box: starts left of it and is clipped by the screen only
	s.DrawTextIn(NewRect(0, 0, 2, 1), 0, "abcd", ColorDefault)
	if s.Get(0, 0) != 'b' {
		t.Errorf("Overlong text should start before the box, got %q", s.Get(0, 0))
	}
}

func TestColorANSI(t *testing.T) {
	tests := []struct {
		c    Color
		code string
		name string
	}{
		{ColorDefault, "", "default"},
		{ColorGray, "245", "gray"},
		{ColorOrange, "208", "orange"},
		{ColorBrightWhite, "15", "bright-white"},
		{Color(200), "", "default"},
	}

	for _, tc := range tests {
		if got := tc.c.ANSI(); got != tc.code {
			t.Errorf("Color(%d).ANSI() = %q, expected %q", tc.c, got, tc.code)
		}
		if got := tc.c.String(); got != tc.name {
			t.Errorf("Color(%d).String() = %q, expected %q", tc.c, got, tc.name)
		}
	}
}
