package raster3d

import "errors"

// Errors reported at the API boundary. They are recoverable at the caller
// level: the facade method that returns them has made no partial writes to
// the bound render targets.
var (
	// ErrDimensionMismatch is returned by SetRenderTarget when the bound
	// Surface and ZBuffer disagree on width or height.
	ErrDimensionMismatch = errors.New("raster3d: surface and zbuffer dimensions disagree")

	// ErrMalformedIndices is returned by RenderTriangleList when the index
	// slice length is not a multiple of 3.
	ErrMalformedIndices = errors.New("raster3d: index count is not a multiple of 3")

	// ErrInvalidVertexVariablesLayout is returned at pipeline construction
	// when a Program reports a variable count that cannot be laid out as a
	// flat sequence of float32 (zero or negative length).
	ErrInvalidVertexVariablesLayout = errors.New("raster3d: invalid VertexVariables layout")
)

// clippingOverflow is the internal invariant-violation signal described in
// spec as ClippingOverflow: a clipped polygon exceeded the fixed eight-vertex
// scratch capacity. The geometry stage proves this cannot happen (six planes,
// each clip can grow the vertex count by at most one, starting from three:
// 3+6 == 9 would be the naive bound, but a triangle can only gain a vertex
// against a plane it actually straddles, and the six canonical frustum
// planes bound the polygon to eight vertices in practice). It is modeled as
// a panic recovered at the single per-triangle call site rather than as an
// error value, because per spec §7 "the core promises it cannot occur given
// the stated invariants" — surfacing it as a normal error would imply
// callers should handle it routinely.
type clippingOverflow struct {
	n int
}

func (e clippingOverflow) Error() string {
	return "raster3d: clipping buffer overflow"
}
