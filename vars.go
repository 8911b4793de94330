package raster3d

// VertexVariables is the flat payload carried from a vertex shader to a
// pixel shader: an ordered sequence of F float32 values, where F is fixed
// for a given Program and known at Rasterizer construction time. Named
// scalar/Vec3/Color accessors are layered on top of fixed index ranges by
// the small helper functions below (ScalarAt/SetScalarAt, Vec3At/SetVec3At,
// ColorFAt/SetColorFAt), each taking the base index of its view.
//
// All required linear operations (Scale, Add, Subtract, Lerp) operate
// element-wise over the whole flat array, which is what makes them safe to
// call generically from the clipper and the fill stage without knowing the
// concrete accessor layout a particular shader defines on top.
type VertexVariables struct {
	Data []float32
}

// NewVertexVariables allocates a VertexVariables with n float32 slots,
// matching spec's "fixed-size ordered sequence" — the slice is never
// resized after construction.
func NewVertexVariables(n int) VertexVariables {
	return VertexVariables{Data: make([]float32, n)}
}

// Scale returns a new VertexVariables with every element of v scaled by s.
func (v VertexVariables) Scale(s float32) VertexVariables {
	out := NewVertexVariables(len(v.Data))
	for i, x := range v.Data {
		out.Data[i] = x * s
	}
	return out
}

// ScaleInPlace scales v's elements by s without allocating.
func (v VertexVariables) ScaleInPlace(s float32) {
	for i := range v.Data {
		v.Data[i] *= s
	}
}

// Add returns a new VertexVariables holding a+b element-wise.
func Add(a, b VertexVariables) VertexVariables {
	out := NewVertexVariables(len(a.Data))
	for i := range out.Data {
		out.Data[i] = a.Data[i] + b.Data[i]
	}
	return out
}

// Subtract returns a new VertexVariables holding a-b element-wise.
func Subtract(a, b VertexVariables) VertexVariables {
	out := NewVertexVariables(len(a.Data))
	for i := range out.Data {
		out.Data[i] = a.Data[i] - b.Data[i]
	}
	return out
}

// Lerp returns a new VertexVariables holding a+(b-a)*t element-wise:
// Lerp(a,b,0)==a, Lerp(a,b,1)==b. This is the linearity invariant the clip
// and fill stages both depend on.
func Lerp(a, b VertexVariables, t float32) VertexVariables {
	out := NewVertexVariables(len(a.Data))
	for i := range out.Data {
		out.Data[i] = a.Data[i] + (b.Data[i]-a.Data[i])*t
	}
	return out
}

// Clone returns an independent copy of v, used when the geometry stage
// seeds the clipping buffer from the vertex shader's output.
func (v VertexVariables) Clone() VertexVariables {
	out := NewVertexVariables(len(v.Data))
	copy(out.Data, v.Data)
	return out
}

// ScalarAt reads a single named float out of vars at base.
func ScalarAt(vars *VertexVariables, base int) float32 {
	return vars.Data[base]
}

// SetScalarAt writes a single named float into vars at base.
func SetScalarAt(vars *VertexVariables, base int, x float32) {
	vars.Data[base] = x
}

// Vec3At reads a named Vec3 view out of vars starting at base.
func Vec3At(vars *VertexVariables, base int) Vec3 {
	return Vec3{X: vars.Data[base], Y: vars.Data[base+1], Z: vars.Data[base+2]}
}

// SetVec3At writes a named Vec3 view into vars starting at base.
func SetVec3At(vars *VertexVariables, base int, v Vec3) {
	vars.Data[base], vars.Data[base+1], vars.Data[base+2] = v.X, v.Y, v.Z
}

// ColorFAt reads a named floating-point RGB color view (each channel in
// [0,1], unclamped) out of vars starting at base. Interpolants are kept as
// floats for the whole geometry/fill pipeline; conversion to the packed
// 8-bit Color happens once, at the end of the pixel shader.
func ColorFAt(vars *VertexVariables, base int) Vec3 {
	return Vec3At(vars, base)
}

// SetColorFAt writes a named floating-point RGB color view into vars
// starting at base.
func SetColorFAt(vars *VertexVariables, base int, c Vec3) {
	SetVec3At(vars, base, c)
}

// PackColor converts a floating-point [0,1] RGB view to a packed 8-bit
// opaque Color, clamping each channel.
func PackColor(c Vec3) Color {
	return RGB(unitToByte(c.X), unitToByte(c.Y), unitToByte(c.Z))
}

func unitToByte(x float32) uint8 {
	return clamp255(x * 255)
}
