package raster3d

import "github.com/chewxy/math32"

// fillSolidTriangle rasterizes one screen-space triangle by scanline
// conversion, implementing the top-left fill convention by applying
// ceilHalf (ceil(v-0.5)) to both the y scanline range and the per-scanline
// x span: a coordinate exactly on a shared boundary is included on one
// triangle's "ceiling" side and excluded from the other's, so two triangles
// sharing an edge never double-fill a pixel or leave a gap.
func (r *Rasterizer[Vtx, C, P]) fillSolidTriangle(a, b, c clipVertex) {
	v0, v1, v2 := a, b, c
	if v0.Pos.Y > v1.Pos.Y {
		v0, v1 = v1, v0
	}
	if v1.Pos.Y > v2.Pos.Y {
		v1, v2 = v2, v1
	}
	if v0.Pos.Y > v1.Pos.Y {
		v0, v1 = v1, v0
	}

	if v0.Pos.Y == v2.Pos.Y {
		return // zero height, no pixel centers can fall strictly inside
	}

	// Flat shading reconstructs the fan-anchor vertex's attributes once,
	// not per pixel, per spec's "designated vertex: vertex 0" convention.
	// That is the triangle's original vertex 0 (a), not v0: v0/v1/v2 above
	// are sorted by Y for the scanline walk and may be any of a, b, c.
	flatVars := a.Vars
	if r.perspectiveCorrect {
		flatVars = a.Vars.Scale(1 / a.Pos.W)
	}

	yStart := int(ceilHalf(v0.Pos.Y))
	yEnd := int(ceilHalf(v2.Pos.Y))

	for y := yStart; y < yEnd; y++ {
		fy := float32(y) + 0.5

		xLong, zLong, wLong, varsLong := interpEdge(v0, v2, edgeT(fy, v0.Pos.Y, v2.Pos.Y))

		var xShort, zShort, wShort float32
		var varsShort VertexVariables
		if fy < v1.Pos.Y {
			xShort, zShort, wShort, varsShort = interpEdge(v0, v1, edgeT(fy, v0.Pos.Y, v1.Pos.Y))
		} else {
			xShort, zShort, wShort, varsShort = interpEdge(v1, v2, edgeT(fy, v1.Pos.Y, v2.Pos.Y))
		}

		xLeft, xRight := xLong, xShort
		zLeft, zRight := zLong, zShort
		wLeft, wRight := wLong, wShort
		varsLeft, varsRight := varsLong, varsShort
		if xLeft > xRight {
			xLeft, xRight = xRight, xLeft
			zLeft, zRight = zRight, zLeft
			wLeft, wRight = wRight, wLeft
			varsLeft, varsRight = varsRight, varsLeft
		}

		xStart := int(ceilHalf(xLeft))
		xEnd := int(ceilHalf(xRight))
		span := xRight - xLeft

		for x := xStart; x < xEnd; x++ {
			fx := float32(x) + 0.5
			var tx float32
			if span > 1e-8 {
				tx = (fx - xLeft) / span
			}
			z := zLeft + (zRight-zLeft)*tx

			var vars VertexVariables
			if r.shading == ShadingFlat {
				vars = flatVars
			} else {
				vars = Lerp(varsLeft, varsRight, tx)
				if r.perspectiveCorrect {
					w := wLeft + (wRight-wLeft)*tx
					vars = vars.Scale(1 / w)
				}
			}

			r.shadePixel(x, y, z, vars)
		}
	}
}

// shadePixel applies the depth test, invokes the pixel shader on a hit, and
// writes color and depth.
func (r *Rasterizer[Vtx, C, P]) shadePixel(x, y int, z float32, vars VertexVariables) {
	if z >= r.zbuf.Get(x, y) {
		return
	}
	color := r.program.PixelShader(vars, r.environment())
	r.surface.SetPixel(x, y, color)
	r.zbuf.Set(x, y, z)
}

// edgeT returns the parametric position of scanline fy between y0 and y1,
// or 0 for a horizontal edge (the caller only reaches that case when the
// other, non-degenerate edge is what actually determines the span).
func edgeT(fy, y0, y1 float32) float32 {
	if y0 == y1 {
		return 0
	}
	return (fy - y0) / (y1 - y0)
}

// interpEdge linearly interpolates x, z, w and vars between two
// viewport-mapped vertices at parameter t.
func interpEdge(a, b clipVertex, t float32) (x, z, w float32, vars VertexVariables) {
	x = a.Pos.X + (b.Pos.X-a.Pos.X)*t
	z = a.Pos.Z + (b.Pos.Z-a.Pos.Z)*t
	w = a.Pos.W + (b.Pos.W-a.Pos.W)*t
	vars = Lerp(a.Vars, b.Vars, t)
	return
}

// ceilHalf implements spec's ceil(v-0.5) pixel-center boundary rule, used
// identically for the y scanline range and the x span on each scanline.
func ceilHalf(v float32) float32 {
	return math32.Ceil(v - 0.5)
}
