package viz

import (
	"strings"

	"github.com/san-kum/vlab/internal/lab"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a braille Surface. Its drawable size in sub-pixels is
// (Width*2) x (Height*4); text occupies whole cells on a separate layer.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	text          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		text:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.text[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

func (c *Canvas) Size() (int, int) { return c.Width * 2, c.Height * 4 }

// Set sets a pixel at (x, y) in sub-pixel coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets both layers.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.text[i][j] = 0
		}
	}
}

func (c *Canvas) Line(x0, y0, x1, y1 int) {
	lab.PlotLine(x0, y0, x1, y1, c.Set)
}

func (c *Canvas) Circle(cx, cy, r int, fill bool) {
	lab.PlotCircle(cx, cy, r, fill, c.Set)
}

// Text writes s starting at the cell containing sub-pixel (x, y), clipped
// at the right edge.
func (c *Canvas) Text(x, y int, s string) {
	if x < 0 || y < 0 {
		return
	}
	row, col := y/4, x/2
	if row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= c.Width {
			break
		}
		c.text[row][col] = r
		col++
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if t := c.text[i][j]; t != 0 {
				r = t
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

var _ lab.Surface = (*Canvas)(nil)
