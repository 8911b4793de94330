package raster3d

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector, used for object-space positions, normals,
// and light directions carried through VertexVariables.
type Vec3 struct {
	X, Y, Z float32
}

// V3 constructs a Vec3.
func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Dot(o Vec3) float32   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 { return math32.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector, or the zero vector if v is
// (numerically) zero-length.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l < 1e-10 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Lerp linearly interpolates between v and o: v at t=0, o at t=1.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Vec4 is a homogeneous 4-component vector: a clip-space position, or a
// Vec3 lifted to homogeneous coordinates with an explicit W.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 constructs a Vec4.
func V4(x, y, z, w float32) Vec4 { return Vec4{X: x, Y: y, Z: z, W: w} }

// Point4 lifts a Vec3 position to homogeneous coordinates (W=1).
func Point4(v Vec3) Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1} }

// Dir4 lifts a Vec3 direction to homogeneous coordinates (W=0).
func Dir4(v Vec3) Vec4 { return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 0} }

// Vec3 drops W, returning the first three components unchanged (no divide).
func (v Vec4) Vec3() Vec3 { return Vec3{X: v.X, Y: v.Y, Z: v.Z} }

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Dot(o Vec4) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// Lerp linearly interpolates between v and o in homogeneous space: v at
// t=0, o at t=1. Used directly by the Sutherland-Hodgman clipper, which
// must interpolate before perspective division.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
		W: v.W + (o.W-v.W)*t,
	}
}
