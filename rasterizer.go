package raster3d

import "log/slog"

// BackfaceCulling selects which winding of a screen-space triangle the
// geometry stage discards.
type BackfaceCulling int

const (
	CullCW BackfaceCulling = iota
	CullCCW
	CullNone
)

// ShadingMode selects how a triangle's VertexVariables reach the pixel
// shader.
type ShadingMode int

const (
	// ShadingFlat passes every pixel in a triangle the VertexVariables of
	// the fan-anchor vertex (vertex 0), interpolating only depth.
	ShadingFlat ShadingMode = iota
	// ShadingGouraud interpolates VertexVariables per pixel across the
	// triangle.
	ShadingGouraud
)

// FillMode selects the draw_triangle strategy.
type FillMode int

const (
	// FillSolid rasterizes through the scanline fill stage, depth-tested,
	// one pixel shader invocation per covered pixel.
	FillSolid FillMode = iota
	// FillWireframe draws the triangle's three edges with Bresenham lines
	// in a constant color, bypassing the pixel shader and the depth test.
	FillWireframe
)

// Rasterizer is the public facade: a software triangle rasterizer
// specialized at construction over a caller vertex type Vtx, a
// ShaderConstants type C, and a Program implementation P.
// PrepareForPerspectiveCorrection, ShadingMode and FillMode are fixed for
// the lifetime of an instance — per spec, these are pipeline compile-time
// choices, not runtime switches.
type Rasterizer[Vtx any, C any, P Program[Vtx, C]] struct {
	program   P
	constants C

	perspectiveCorrect bool
	shading            ShadingMode
	fillMode           FillMode

	matrices matrixCache

	surface Surface
	zbuf    ZBuffer

	textures []*Texture
	culling  BackfaceCulling

	// WireColor is the constant color FillWireframe draws triangle edges
	// with.
	WireColor Color
}

// NewRasterizer constructs a Rasterizer specialized over program. Returns
// ErrInvalidVertexVariablesLayout if program reports a non-positive
// VertexVariables length, since a flat float32 array cannot have a
// non-positive length.
func NewRasterizer[Vtx any, C any, P Program[Vtx, C]](program P, shading ShadingMode, fillMode FillMode, perspectiveCorrect bool) (*Rasterizer[Vtx, C, P], error) {
	if program.NumVars() <= 0 {
		return nil, ErrInvalidVertexVariablesLayout
	}
	return &Rasterizer[Vtx, C, P]{
		program:             program,
		perspectiveCorrect:  perspectiveCorrect,
		shading:             shading,
		fillMode:            fillMode,
		matrices:            newMatrixCache(),
		culling:             CullCW,
		WireColor:           White,
	}, nil
}

// SetRenderTarget binds the color and depth targets. Returns
// ErrDimensionMismatch if their dimensions disagree, in which case the
// previously bound targets stay bound; on success, later RenderTriangleList
// calls write into the new targets.
func (r *Rasterizer[Vtx, C, P]) SetRenderTarget(surface Surface, zbuf ZBuffer) error {
	if surface.Width() != zbuf.Width() || surface.Height() != zbuf.Height() {
		return ErrDimensionMismatch
	}
	r.surface = surface
	r.zbuf = zbuf
	Logger().Info("render target bound", slog.Int("width", surface.Width()), slog.Int("height", surface.Height()))
	return nil
}

func (r *Rasterizer[Vtx, C, P]) WorldMatrix() Mat4         { return r.matrices.world }
func (r *Rasterizer[Vtx, C, P]) ViewMatrix() Mat4          { return r.matrices.view }
func (r *Rasterizer[Vtx, C, P]) ProjectionMatrix() Mat4    { return r.matrices.proj }
func (r *Rasterizer[Vtx, C, P]) WorldNormalMatrix() Mat4   { return r.matrices.normal }
func (r *Rasterizer[Vtx, C, P]) WorldViewMatrix() Mat4     { return r.matrices.worldView }
func (r *Rasterizer[Vtx, C, P]) WorldViewProjMatrix() Mat4 { return r.matrices.worldViewProj }

// SetWorldMatrix sets W and refreshes WV, WVP and the world-normal matrix
// N = (W^-1)^T before returning.
func (r *Rasterizer[Vtx, C, P]) SetWorldMatrix(m Mat4) {
	r.matrices.setWorld(m)
	Logger().Debug("world matrix set, normal matrix recomputed")
}

// SetViewMatrix sets V and refreshes WV and WVP before returning.
func (r *Rasterizer[Vtx, C, P]) SetViewMatrix(m Mat4) { r.matrices.setView(m) }

// SetProjectionMatrix sets P and refreshes WVP before returning.
func (r *Rasterizer[Vtx, C, P]) SetProjectionMatrix(m Mat4) { r.matrices.setProjection(m) }

func (r *Rasterizer[Vtx, C, P]) BackfaceCullingMode() BackfaceCulling   { return r.culling }
func (r *Rasterizer[Vtx, C, P]) SetBackfaceCulling(mode BackfaceCulling) { r.culling = mode }

// SetTextures replaces the bound texture set. Each Texture's fixed-point
// dimensions were already precomputed at construction time, so rebinding
// is a plain slice swap.
func (r *Rasterizer[Vtx, C, P]) SetTextures(textures []*Texture) {
	r.textures = textures
	Logger().Info("texture set rebound", slog.Int("count", len(textures)))
}

// ShaderConstants returns a mutable pointer to the per-pipeline constants
// record. Per spec, callers must not mutate it while a RenderTriangleList
// call on this instance is in progress.
func (r *Rasterizer[Vtx, C, P]) ShaderConstants() *C { return &r.constants }

func (r *Rasterizer[Vtx, C, P]) environment() Environment[C] {
	return Environment[C]{
		WorldNormalMatrix:   r.matrices.normal,
		WorldViewProjMatrix: r.matrices.worldViewProj,
		Constants:           &r.constants,
		textures:            r.textures,
	}
}

// RenderTriangleList runs the full pipeline for an indexed triangle list,
// writing into the bound render targets. Returns ErrMalformedIndices if
// len(indices) is not a multiple of 3.
func (r *Rasterizer[Vtx, C, P]) RenderTriangleList(vertices []Vtx, indices []int) error {
	if len(indices)%3 != 0 {
		return ErrMalformedIndices
	}

	env := r.environment()
	transformed := make([]clipVertex, len(vertices))
	for i, v := range vertices {
		vars := NewVertexVariables(r.program.NumVars())
		var pos Vec4
		r.program.VertexShader(v, env, &pos, &vars)
		transformed[i] = clipVertex{Pos: pos, Vars: vars}
	}

	for t := 0; t < len(indices); t += 3 {
		i0, i1, i2 := indices[t], indices[t+1], indices[t+2]
		r.renderTriangle(transformed[i0], transformed[i1], transformed[i2])
	}
	return nil
}
