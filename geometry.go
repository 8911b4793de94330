package raster3d

// renderTriangle runs the per-triangle pipeline described in spec §4.2:
// clip against the six frustum planes, perspective divide, viewport map,
// backface cull, fan-triangulate, then dispatch each sub-triangle to
// draw_triangle. tv0/tv1/tv2 are the already vertex-shaded inputs named by
// this triangle's three indices.
func (r *Rasterizer[Vtx, C, P]) renderTriangle(tv0, tv1, tv2 clipVertex) {
	defer func() {
		if rec := recover(); rec != nil {
			if _, ok := rec.(clippingOverflow); ok {
				Logger().Warn("clipping buffer overflow, triangle discarded")
				return
			}
			panic(rec)
		}
	}()

	var bufA, bufB [8]clipVertex
	bufA[0] = clipVertex{Pos: tv0.Pos, Vars: tv0.Vars.Clone()}
	bufA[1] = clipVertex{Pos: tv1.Pos, Vars: tv1.Vars.Clone()}
	bufA[2] = clipVertex{Pos: tv2.Pos, Vars: tv2.Vars.Clone()}
	n := 3

	src, dst := bufA[:], bufB[:]
	for _, plane := range FrustumPlanes(false) {
		n = clipToPlane(src, n, dst, plane)
		src, dst = dst, src
		if n < 3 {
			return
		}
	}
	poly := src[:n]

	width, height := float32(r.surface.Width()), float32(r.surface.Height())
	for i := range poly {
		v := &poly[i]
		invW := 1 / v.Pos.W
		v.Pos.X *= invW
		v.Pos.Y *= invW
		v.Pos.Z *= invW
		if r.perspectiveCorrect {
			v.Vars.ScaleInPlace(invW)
			v.Pos.W = invW
		} else {
			v.Pos.W = 1
		}
		v.Pos.X = (v.Pos.X + 1) * width / 2
		v.Pos.Y = (1 - v.Pos.Y) * height / 2
	}

	if r.culling != CullNone {
		c := (poly[1].Pos.X-poly[0].Pos.X)*(poly[2].Pos.Y-poly[0].Pos.Y) -
			(poly[1].Pos.Y-poly[0].Pos.Y)*(poly[2].Pos.X-poly[0].Pos.X)
		switch r.culling {
		case CullCCW:
			if c < 0 {
				return
			}
		case CullCW:
			if c > 0 {
				return
			}
		}
	}

	for i := 1; i <= n-2; i++ {
		r.drawTriangle(poly[0], poly[i], poly[i+1])
	}
}

// drawTriangle is the draw_triangle seam: solid fill and wireframe share
// everything upstream of this call and differ only here.
func (r *Rasterizer[Vtx, C, P]) drawTriangle(a, b, c clipVertex) {
	if r.fillMode == FillWireframe {
		r.drawWireframeTriangle(a, b, c)
		return
	}
	r.fillSolidTriangle(a, b, c)
}
