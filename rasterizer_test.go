package raster3d

import "testing"

// testVertex carries an already-clip-space position (these tests exercise
// identity-transform scenarios, so the vertex shader is a pure pass-through)
// plus an RGB color interpolant.
type testVertex struct {
	Pos   Vec4
	Color Vec3
}

type testConstants struct{}

type passthroughProgram struct{}

func (passthroughProgram) NumVars() int { return 3 }

func (passthroughProgram) VertexShader(v testVertex, env Environment[testConstants], pos *Vec4, vars *VertexVariables) {
	*pos = v.Pos
	SetVec3At(vars, 0, v.Color)
}

func (passthroughProgram) PixelShader(vars VertexVariables, env Environment[testConstants]) Color {
	return PackColor(Vec3At(&vars, 0))
}

func newTestRasterizer(t *testing.T, width, height int, shading ShadingMode, perspectiveCorrect bool) (*Rasterizer[testVertex, testConstants, passthroughProgram], *Pixmap, *DepthBuffer) {
	t.Helper()
	rz, err := NewRasterizer[testVertex, testConstants, passthroughProgram](passthroughProgram{}, shading, FillSolid, perspectiveCorrect)
	if err != nil {
		t.Fatalf("NewRasterizer: %v", err)
	}
	surf := NewPixmap(width, height)
	zbuf := NewDepthBuffer(width, height)
	if err := rz.SetRenderTarget(surf, zbuf); err != nil {
		t.Fatalf("SetRenderTarget: %v", err)
	}
	return rz, surf, zbuf
}

func countPainted(surf *Pixmap, background Color) int {
	n := 0
	for y := 0; y < surf.Height(); y++ {
		for x := 0; x < surf.Width(); x++ {
			if surf.GetPixel(x, y) != background {
				n++
			}
		}
	}
	return n
}

// TestScenario_S1_FullscreenQuad is scenario S1.
func TestScenario_S1_FullscreenQuad(t *testing.T) {
	rz, surf, zbuf := newTestRasterizer(t, 4, 4, ShadingGouraud, false)

	white := V3(1, 1, 1)
	verts := []testVertex{
		{Pos: V4(-1, -1, 0.5, 1), Color: white},
		{Pos: V4(1, -1, 0.5, 1), Color: white},
		{Pos: V4(-1, 1, 0.5, 1), Color: white},
		{Pos: V4(1, 1, 0.5, 1), Color: white},
	}
	if err := rz.RenderTriangleList(verts, []int{0, 1, 2, 1, 3, 2}); err != nil {
		t.Fatalf("RenderTriangleList: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := surf.GetPixel(x, y); got != White {
				t.Errorf("pixel (%d,%d) = %+v, want White", x, y, got)
			}
			if got := zbuf.Get(x, y); got != 0.5 {
				t.Errorf("depth (%d,%d) = %v, want 0.5", x, y, got)
			}
		}
	}
}

// TestScenario_S2_OffscreenTriangle is scenario S2.
func TestScenario_S2_OffscreenTriangle(t *testing.T) {
	rz, surf, zbuf := newTestRasterizer(t, 4, 4, ShadingGouraud, false)
	surf.Clear(Black)

	verts := []testVertex{
		{Pos: V4(0, 0, 2, 1), Color: V3(1, 1, 1)},
		{Pos: V4(1, 0, 2, 1), Color: V3(1, 1, 1)},
		{Pos: V4(0, 1, 2, 1), Color: V3(1, 1, 1)},
	}
	if err := rz.RenderTriangleList(verts, []int{0, 1, 2}); err != nil {
		t.Fatalf("RenderTriangleList: %v", err)
	}

	if n := countPainted(surf, Black); n != 0 {
		t.Errorf("painted pixel count = %d, want 0", n)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if got := zbuf.Get(x, y); got != farValue {
				t.Errorf("depth (%d,%d) = %v, want untouched far value", x, y, got)
			}
		}
	}
}

// TestScenario_S4_BackfaceCulling is scenario S4.
func TestScenario_S4_BackfaceCulling(t *testing.T) {
	verts := []testVertex{
		{Pos: V4(0, 0, 0.5, 1), Color: V3(1, 1, 1)},
		{Pos: V4(1, 0, 0.5, 1), Color: V3(1, 1, 1)},
		{Pos: V4(0, 1, 0.5, 1), Color: V3(1, 1, 1)},
	}

	cases := []struct {
		name    string
		culling BackfaceCulling
		want    bool // true = expect triangle filled
	}{
		{"CULL_CCW_discards", CullCCW, false},
		{"CULL_CW_fills", CullCW, true},
		{"NONE_fills", CullNone, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rz, surf, _ := newTestRasterizer(t, 4, 4, ShadingGouraud, false)
			rz.SetBackfaceCulling(c.culling)
			if err := rz.RenderTriangleList(verts, []int{0, 1, 2}); err != nil {
				t.Fatalf("RenderTriangleList: %v", err)
			}
			painted := countPainted(surf, Transparent) > 0
			if painted != c.want {
				t.Errorf("painted = %v, want %v", painted, c.want)
			}
		})
	}
}

// TestScenario_S5_DepthTest is scenario S5, and also exercises invariant 6
// (depth correctness is independent of draw order) via the _ReverseOrder
// subtest.
func TestScenario_S5_DepthTest(t *testing.T) {
	near := []testVertex{
		{Pos: V4(-2, -2, 0.3, 1), Color: V3(1, 0, 0)},
		{Pos: V4(2, -2, 0.3, 1), Color: V3(1, 0, 0)},
		{Pos: V4(-2, 2, 0.3, 1), Color: V3(1, 0, 0)},
		{Pos: V4(2, 2, 0.3, 1), Color: V3(1, 0, 0)},
	}
	far := []testVertex{
		{Pos: V4(-2, -2, 0.7, 1), Color: V3(0, 0, 1)},
		{Pos: V4(2, -2, 0.7, 1), Color: V3(0, 0, 1)},
		{Pos: V4(-2, 2, 0.7, 1), Color: V3(0, 0, 1)},
		{Pos: V4(2, 2, 0.7, 1), Color: V3(0, 0, 1)},
	}
	quad := []int{0, 1, 2, 1, 3, 2}

	check := func(t *testing.T, first, second []testVertex) {
		rz, surf, zbuf := newTestRasterizer(t, 2, 2, ShadingGouraud, false)
		if err := rz.RenderTriangleList(first, quad); err != nil {
			t.Fatalf("first RenderTriangleList: %v", err)
		}
		if err := rz.RenderTriangleList(second, quad); err != nil {
			t.Fatalf("second RenderTriangleList: %v", err)
		}
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				if got := surf.GetPixel(x, y); got != Red {
					t.Errorf("pixel (%d,%d) = %+v, want Red (the nearer triangle)", x, y, got)
				}
				if got := zbuf.Get(x, y); got != 0.3 {
					t.Errorf("depth (%d,%d) = %v, want 0.3", x, y, got)
				}
			}
		}
	}

	t.Run("NearThenFar", func(t *testing.T) { check(t, near, far) })
	t.Run("FarThenNear_invariant6", func(t *testing.T) { check(t, far, near) })
}

// TestFlatShading_UsesVertexZeroForWholeTriangle verifies that flat shading
// on the solid-fill path (not wireframe, which bypasses fillSolidTriangle
// entirely) reconstructs vertex 0's attributes for every pixel, regardless
// of where vertex 0 lands in the scanline's internal Y-sort.
func TestFlatShading_UsesVertexZeroForWholeTriangle(t *testing.T) {
	rz, surf, _ := newTestRasterizer(t, 8, 8, ShadingFlat, false)

	verts := []testVertex{
		{Pos: V4(0, 0, 0.5, 1), Color: V3(1, 0, 0)},
		{Pos: V4(1, 0, 0.5, 1), Color: V3(0, 1, 0)},
		{Pos: V4(0, 1, 0.5, 1), Color: V3(0, 0, 1)},
	}
	if err := rz.RenderTriangleList(verts, []int{0, 1, 2}); err != nil {
		t.Fatalf("RenderTriangleList: %v", err)
	}

	if n := countPainted(surf, Transparent); n == 0 {
		t.Fatal("no pixels painted")
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := surf.GetPixel(x, y)
			if c == Transparent {
				continue
			}
			if c != Red {
				t.Errorf("pixel (%d,%d) = %+v, want Red (vertex 0's color)", x, y, c)
			}
		}
	}
}

// TestFlatShading_ConsistentAcrossFannedSubTriangles verifies that a
// triangle clipped into a polygon with more than three vertices (and thus
// emitted as multiple drawTriangle calls sharing the same fan anchor) is
// flat-shaded with a single, consistent color across every sub-triangle.
// Before the fix, each drawTriangle call independently re-sorted its own
// three vertices by Y and flat-shaded from whichever of them had the
// smallest Y, so different sub-triangles of the same fanned polygon could
// take different colors.
func TestFlatShading_ConsistentAcrossFannedSubTriangles(t *testing.T) {
	rz, surf, _ := newTestRasterizer(t, 16, 16, ShadingFlat, false)

	// Wide triangle clipped by the left and right planes alone into a
	// pentagon (same shape as the clipping test's scenario), fanned into
	// three sub-triangles sharing poly[0] as the anchor.
	verts := []testVertex{
		{Pos: V4(-2, -0.5, 0.5, 1), Color: V3(1, 0, 0)},
		{Pos: V4(2, -0.5, 0.5, 1), Color: V3(0, 1, 0)},
		{Pos: V4(0, 0.5, 0.5, 1), Color: V3(0, 0, 1)},
	}
	if err := rz.RenderTriangleList(verts, []int{0, 1, 2}); err != nil {
		t.Fatalf("RenderTriangleList: %v", err)
	}

	seen := map[Color]bool{}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			c := surf.GetPixel(x, y)
			if c == Transparent {
				continue
			}
			seen[c] = true
		}
	}
	if len(seen) == 0 {
		t.Fatal("no pixels painted")
	}
	if len(seen) != 1 {
		t.Errorf("flat-shaded fanned polygon painted %d distinct colors %+v, want exactly 1", len(seen), seen)
	}
}

// TestInvariant5_BackfaceCullSymmetry verifies that reordering a triangle's
// vertices from (v0,v1,v2) to (v0,v2,v1) flips which culling mode discards
// it.
func TestInvariant5_BackfaceCullSymmetry(t *testing.T) {
	v0 := testVertex{Pos: V4(0, 0, 0.5, 1), Color: V3(1, 1, 1)}
	v1 := testVertex{Pos: V4(1, 0, 0.5, 1), Color: V3(1, 1, 1)}
	v2 := testVertex{Pos: V4(0, 1, 0.5, 1), Color: V3(1, 1, 1)}

	paintedUnder := func(culling BackfaceCulling, order []testVertex) bool {
		rz, surf, _ := newTestRasterizer(t, 4, 4, ShadingGouraud, false)
		rz.SetBackfaceCulling(culling)
		if err := rz.RenderTriangleList(order, []int{0, 1, 2}); err != nil {
			t.Fatalf("RenderTriangleList: %v", err)
		}
		return countPainted(surf, Transparent) > 0
	}

	forward := []testVertex{v0, v1, v2}
	reordered := []testVertex{v0, v2, v1}

	if paintedUnder(CullCW, forward) == paintedUnder(CullCCW, forward) {
		t.Fatalf("CULL_CW and CULL_CCW agreed on the forward winding, want opposite")
	}
	if paintedUnder(CullCW, forward) != paintedUnder(CullCCW, reordered) {
		t.Errorf("CULL_CW(forward) and CULL_CCW(reordered) disagree, want the same result")
	}
	if paintedUnder(CullCCW, forward) != paintedUnder(CullCW, reordered) {
		t.Errorf("CULL_CCW(forward) and CULL_CW(reordered) disagree, want the same result")
	}
}

// TestInvariant7_PerspectiveCorrectReconstruction checks that with
// PrepareForPerspectiveCorrection enabled, the reconstructed color of the
// pixel next to vertex 0 stays close to that vertex's original
// (pre-division) color, even though another vertex has a different w.
func TestInvariant7_PerspectiveCorrectReconstruction(t *testing.T) {
	rz, surf, _ := newTestRasterizer(t, 8, 8, ShadingGouraud, true)

	verts := []testVertex{
		{Pos: V4(-1, -1, 0.5, 1), Color: V3(1, 0, 0)},
		{Pos: V4(1, -1, 0.5, 2), Color: V3(0, 1, 0)},
		{Pos: V4(-1, 1, 0.5, 1), Color: V3(0, 0, 1)},
	}
	if err := rz.RenderTriangleList(verts, []int{0, 1, 2}); err != nil {
		t.Fatalf("RenderTriangleList: %v", err)
	}

	// The bottom-left corner (screen-mapped from (-1,-1)) is dominated by
	// vertex 0, whose w is 1: perspective division there is a no-op, so the
	// reconstructed color should land very close to pure red regardless of
	// the other vertices' differing w.
	c := surf.GetPixel(0, 7)
	if c.R < 200 || c.G > 60 || c.B > 60 {
		t.Errorf("corner color = %+v, want close to pure red", c)
	}
}
