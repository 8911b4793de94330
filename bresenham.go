package raster3d

// drawLine draws a line from (x0,y0) to (x1,y1) on surface in color c using
// integer Bresenham, with separate steep/shallow branches (spec §4.8). The
// end pixel is always written; there is no clipping here, since the
// geometry stage has already clipped the triangle that produced this line.
func drawLine(surface Surface, x0, y0, x1, y1 int, c Color) {
	dx := iabs(x1 - x0)
	dy := iabs(y1 - y0)
	if dx >= dy {
		if x0 > x1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		drawLineShallow(surface, x0, y0, x1, y1, c)
	} else {
		if y0 > y1 {
			x0, y0, x1, y1 = x1, y1, x0, y0
		}
		drawLineSteep(surface, x0, y0, x1, y1, c)
	}
}

// drawLineShallow handles |dx| >= |dy|, stepping x by one pixel per
// iteration and accumulating y via the Bresenham error term.
func drawLineShallow(surface Surface, x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	yStep := 1
	if dy < 0 {
		yStep = -1
		dy = -dy
	}
	d := 2*dy - dx
	y := y0
	for x := x0; x <= x1; x++ {
		surface.SetPixel(x, y, c)
		if d > 0 {
			y += yStep
			d += 2*dy - 2*dx
		} else {
			d += 2 * dy
		}
	}
}

// drawLineSteep handles |dy| > |dx|, stepping y by one pixel per iteration
// and accumulating x via the Bresenham error term.
func drawLineSteep(surface Surface, x0, y0, x1, y1 int, c Color) {
	dx := x1 - x0
	dy := y1 - y0
	xStep := 1
	if dx < 0 {
		xStep = -1
		dx = -dx
	}
	d := 2*dx - dy
	x := x0
	for y := y0; y <= y1; y++ {
		surface.SetPixel(x, y, c)
		if d > 0 {
			x += xStep
			d += 2*dx - 2*dy
		} else {
			d += 2 * dx
		}
	}
}

func iabs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
