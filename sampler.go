package raster3d

// ReadTexture samples tex at normalized UV using fixed-point addressing.
// No vertical flip is applied: v=0 addresses row 0 of the row-major buffer
// (the top row of an image converted by FromImage), so a caller working in
// the OpenGL bottom-left convention provides v already flipped to that
// orientation. bilinear selects nearest vs
// bilinear filtering; tile selects wraparound vs clamp-to-edge addressing.
//
// This is the pixel stage's principal inner loop, so apart from the tile
// wrap below it is implemented entirely in int32 fixed point: no per-sample
// float divides, and the per-texture shifted dimensions are read, not
// recomputed. In tile mode the UV is wrapped into [0,1) before conversion
// to fixed point rather than after, so the wrap is exact for any integer
// UV shift regardless of texture dimensions.
func ReadTexture(tex *Texture, u, v float32, bilinear, tile bool) Color {
	if tile {
		u = floorMod1(u)
		v = floorMod1(v)
	}

	uFx := fixedRound(u * float32(tex.shiftedXLimit))
	vFx := fixedRound(v * float32(tex.shiftedYLimit))

	if tile {
		uFx = floorMod(uFx, tex.shiftedWidth)
		vFx = floorMod(vFx, tex.shiftedHeight)
	} else {
		uFx = clampInt32(uFx, 0, tex.shiftedXLimit)
		vFx = clampInt32(vFx, 0, tex.shiftedYLimit)
	}

	u0 := int(uFx >> texelShift)
	v0 := int(vFx >> texelShift)

	if !bilinear {
		return tex.At(u0, v0)
	}

	const one = int32(1) << texelShift
	mask := one - 1
	lu := uFx & mask
	ilu := one - lu
	lv := vFx & mask
	ilv := one - lv

	u1 := (u0 + 1) % tex.Width
	v1 := (v0 + 1) % tex.Height

	c00 := tex.At(u0, v0)
	c10 := tex.At(u1, v0)
	c01 := tex.At(u0, v1)
	c11 := tex.At(u1, v1)

	return Color{
		A: c00.A,
		R: bilerpChannel(c00.R, c10.R, c01.R, c11.R, lu, ilu, lv, ilv),
		G: bilerpChannel(c00.G, c10.G, c01.G, c11.G, lu, ilu, lv, ilv),
		B: bilerpChannel(c00.B, c10.B, c01.B, c11.B, lu, ilu, lv, ilv),
	}
}

// bilerpChannel computes the bilinear blend of one 8-bit channel across
// four texel corners, using the fixed-point weights from ReadTexture:
// ((c00*ilu + c10*lu)*ilv + (c01*ilu + c11*lu)*lv) >> (2*S).
func bilerpChannel(c00, c10, c01, c11 uint8, lu, ilu, lv, ilv int32) uint8 {
	top := int32(c00)*ilu + int32(c10)*lu
	bottom := int32(c01)*ilu + int32(c11)*lu
	return uint8((top*ilv + bottom*lv) >> (2 * texelShift))
}

// fixedRound rounds x to the nearest integer (half away from zero) and
// returns it as fixed-point-ready int32; x is already in fixed-point units
// by the time this is called (pre-multiplied by the shifted limit).
func fixedRound(x float32) int32 {
	if x >= 0 {
		return int32(x + 0.5)
	}
	return int32(x - 0.5)
}

// floorMod1 wraps x into [0,1) so that tile-mode addressing is exactly
// periodic in UV: read_texture(u,v) == read_texture(u+1,v+1) holds bit for
// bit, not just up to rounding, because an integer UV shift vanishes before
// it ever reaches fixed point.
func floorMod1(x float32) float32 {
	f := x - float32(int32(x))
	if f < 0 {
		f++
	}
	return f
}

// floorMod returns the mathematical (non-negative) modulus of a by m.
func floorMod(a, m int32) int32 {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}

func clampInt32(x, lo, hi int32) int32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
