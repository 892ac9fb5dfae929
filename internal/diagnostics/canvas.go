// Package diagnostics renders solved trajectories for human inspection:
// a Braille sub-pixel canvas and SVG export of the 2-D configuration
// space projection, and an asciigraph plot of the velocity/
// acceleration limit curves against arc length.
package diagnostics

import "strings"

// pixelMap maps sub-pixel (col, row) positions within a braille cell
// to the Unicode braille dot bits.
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a terminal-resolution braille drawing surface: each
// character cell packs a 2x4 grid of addressable sub-pixels. A cell
// can also carry a whole-cell mark that overrides its braille pattern
// when rendered, for callers that need to distinguish one point (e.g.
// a live cursor position) from the surrounding dot trail.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	marks         map[[2]int]rune
}

// NewCanvas returns a blank w x h (character cells) canvas.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h, Grid: make([][]rune, h)}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// Highlight marks the cell containing sub-pixel (x, y) with mark,
// overriding its braille pattern in String's output. Later marks at
// the same cell replace earlier ones.
func (c *Canvas) Highlight(x, y int, mark rune) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	if c.marks == nil {
		c.marks = make(map[[2]int]rune)
	}
	c.marks[[2]int{col, row}] = mark
}

// Set lights the sub-pixel at (x, y), where the addressable space is
// (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// DrawLine rasterizes a line between two sub-pixel coordinates with
// Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for row, line := range c.Grid {
		for col, r := range line {
			if mark, ok := c.marks[[2]int{col, row}]; ok {
				r = mark
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
