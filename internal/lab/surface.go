package lab

// Surface is a drawable target in sub-pixel coordinates, origin top-left.
type Surface interface {
	Size() (w, h int)
	Clear()
	Set(x, y int)
	Line(x0, y0, x1, y1 int)
	Circle(cx, cy, r int, fill bool)
	Text(x, y int, s string)
}

// PlotLine rasterises a line with Bresenham's algorithm.
func PlotLine(x0, y0, x1, y1 int, set func(x, y int)) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		set(x0, y0)
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

// PlotCircle rasterises a circle outline, or a disc when fill is set.
func PlotCircle(cx, cy, r int, fill bool, set func(x, y int)) {
	if r <= 0 {
		set(cx, cy)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d > r*r {
				continue
			}
			if fill || d >= (r-1)*(r-1) {
				set(cx+dx, cy+dy)
			}
		}
	}
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
