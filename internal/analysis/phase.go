package analysis

import (
	"strings"

	"github.com/san-kum/vlab/internal/lab"
)

type Point struct{ X, Y float64 }

// PhasePortrait2D holds two columns of a series plotted against each other.
type PhasePortrait2D struct {
	XName, YName string
	Points       []Point
}

// Portrait pairs columns xcol and ycol of ser, e.g. angle against angular
// velocity. Returns nil for a missing column.
func Portrait(ser lab.Series, xcol, ycol int) *PhasePortrait2D {
	if xcol < 0 || ycol < 0 || xcol >= len(ser.YNames) || ycol >= len(ser.YNames) {
		return nil
	}
	p := &PhasePortrait2D{
		XName:  ser.YNames[xcol],
		YName:  ser.YNames[ycol],
		Points: make([]Point, 0, len(ser.Points)),
	}
	for _, pt := range ser.Points {
		p.Points = append(p.Points, Point{X: pt.Y[xcol], Y: pt.Y[ycol]})
	}
	return p
}

// PhasePortraitToASCII converts phase portrait to ASCII art
func PhasePortraitToASCII(portrait *PhasePortrait2D, width, height int) string {
	if portrait == nil || len(portrait.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := portrait.Points[0].X, portrait.Points[0].X
	minY, maxY := portrait.Points[0].Y, portrait.Points[0].Y
	for _, p := range portrait.Points {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}
	toCell := func(x, y float64) (int, int) {
		return int((x - minX) / rangeX * float64(width-1)), height - 1 - int((y-minY)/rangeY*float64(height-1))
	}

	for _, p := range portrait.Points {
		col, row := toCell(p.X, p.Y)
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	// axes where they cross the visible area
	zc, zr := toCell(0, 0)
	if zc >= 0 && zc < width {
		for row := range grid {
			if grid[row][zc] == ' ' {
				grid[row][zc] = '│'
			}
		}
	}
	if zr >= 0 && zr < height {
		for col := range grid[zr] {
			if grid[zr][col] == ' ' {
				grid[zr][col] = '─'
			}
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Crossings returns the interpolated x positions where column col rises
// through threshold.
func Crossings(ser lab.Series, col int, threshold float64) []float64 {
	var out []float64
	for i := 1; i < len(ser.Points); i++ {
		a, b := ser.Points[i-1], ser.Points[i]
		if col >= len(a.Y) || col >= len(b.Y) {
			return nil
		}
		if a.Y[col] < threshold && b.Y[col] >= threshold {
			frac := (threshold - a.Y[col]) / (b.Y[col] - a.Y[col])
			out = append(out, a.X+frac*(b.X-a.X))
		}
	}
	return out
}

// CrossingPeriod is the mean spacing of upward crossings of zero, or 0 when
// fewer than two crossings exist.
func CrossingPeriod(ser lab.Series, col int) float64 {
	xs := Crossings(ser, col, 0)
	if len(xs) < 2 {
		return 0
	}
	return (xs[len(xs)-1] - xs[0]) / float64(len(xs)-1)
}
