package experiment

import (
	"math"

	"github.com/san-kum/vlab/internal/lab"
)

// frac maps a fraction of the surface extent to a sub-pixel coordinate.
func frac(n int, f float64) int {
	return int(math.Round(float64(n-1) * f))
}

func rect(s lab.Surface, x0, y0, x1, y1 int) {
	s.Line(x0, y0, x1, y0)
	s.Line(x1, y0, x1, y1)
	s.Line(x1, y1, x0, y1)
	s.Line(x0, y1, x0, y0)
}

// zigzag draws a resistor between (x0,y) and (x1,y).
func zigzag(s lab.Surface, x0, x1, y, amp int) {
	const teeth = 6
	step := float64(x1-x0) / teeth
	px, py := x0, y
	for i := 1; i <= teeth; i++ {
		nx := x0 + int(math.Round(step*float64(i)))
		ny := y
		if i < teeth {
			if i%2 == 1 {
				ny = y - amp
			} else {
				ny = y + amp
			}
		}
		s.Line(px, py, nx, ny)
		px, py = nx, ny
	}
}

// battery draws a vertical cell centred on (x,y), long plate on top.
func battery(s lab.Surface, x, y, size int) {
	s.Line(x-size, y-size/3, x+size, y-size/3)
	s.Line(x-size/2, y+size/3, x+size/2, y+size/3)
}

func clampUnit(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
