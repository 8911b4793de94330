package raster3d

// drawWireframeTriangle is the wireframe draw_triangle variant (spec §4.5):
// three Bresenham lines between the screen-space endpoints, no depth test,
// a single constant color rather than a pixel shader invocation.
func (r *Rasterizer[Vtx, C, P]) drawWireframeTriangle(a, b, c clipVertex) {
	p0 := screenPoint(a)
	p1 := screenPoint(b)
	p2 := screenPoint(c)

	drawLine(r.surface, p0.x, p0.y, p1.x, p1.y, r.WireColor)
	drawLine(r.surface, p1.x, p1.y, p2.x, p2.y, r.WireColor)
	drawLine(r.surface, p2.x, p2.y, p0.x, p0.y, r.WireColor)
}

type intPoint struct{ x, y int }

// screenPoint truncates an already viewport-mapped position to integer
// pixel coordinates. Go's float-to-int conversion truncates toward zero,
// which is exactly the rounding policy the sampler and Bresenham line
// drawer assume, with no scoped FPU state required to get it.
func screenPoint(v clipVertex) intPoint {
	return intPoint{x: int(v.Pos.X), y: int(v.Pos.Y)}
}
