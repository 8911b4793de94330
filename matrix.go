package raster3d

import "github.com/chewxy/math32"

// Mat4 is a 4x4 matrix in row-major order: m[r*4+c] is row r, column c.
// Vectors are column vectors; Mat4.MulVec4 computes M*v and Multiply(a, b)
// computes a*b, so transforms compose left-to-right as ordinary matrix
// products (WVP = P.Multiply(V).Multiply(W), applied right-to-left to a
// point).
type Mat4 [16]float32

// Identity4 returns the 4x4 identity matrix.
func Identity4() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translation4 returns a translation matrix.
func Translation4(t Vec3) Mat4 {
	m := Identity4()
	m[3], m[7], m[11] = t.X, t.Y, t.Z
	return m
}

// Scaling4 returns a non-uniform scale matrix.
func Scaling4(s Vec3) Mat4 {
	return Mat4{
		s.X, 0, 0, 0,
		0, s.Y, 0, 0,
		0, 0, s.Z, 0,
		0, 0, 0, 1,
	}
}

// RotationX4 returns a rotation matrix about the X axis, angle in radians.
func RotationX4(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY4 returns a rotation matrix about the Y axis, angle in radians.
func RotationY4(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ4 returns a rotation matrix about the Z axis, angle in radians.
func RotationZ4(angle float32) Mat4 {
	c, s := math32.Cos(angle), math32.Sin(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective4 builds a left-handed perspective projection matrix matching
// the canonical clip volume FrustumPlanes assumes: -w<=x,y<=w and 0<=z<=w.
// View space looks down +z: clip-space w is the view-space z, so points in
// front of the camera have positive z. (LookAt4's view space looks down
// -z.) fovY is in radians.
func Perspective4(fovY, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(fovY/2)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, far / (far - near), -near * far / (far - near),
		0, 0, 1, 0,
	}
}

// LookAt4 builds a right-handed view matrix.
func LookAt4(eye, target, up Vec3) Mat4 {
	f := target.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Mat4{
		s.X, s.Y, s.Z, -s.Dot(eye),
		u.X, u.Y, u.Z, -u.Dot(eye),
		-f.X, -f.Y, -f.Z, f.Dot(eye),
		0, 0, 0, 1,
	}
}

// Multiply returns m*o.
func (m Mat4) Multiply(o Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * o[k*4+col]
			}
			r[row*4+col] = sum
		}
	}
	return r
}

// MulVec4 returns m*v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		W: m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[col*4+row] = m[row*4+col]
		}
	}
	return r
}

// Inverse returns the inverse of m via general 4x4 cofactor expansion, or
// Identity4 if m is numerically singular. Used to derive the world-normal
// matrix N = (W^-1)^T whenever the world matrix is set.
func (m Mat4) Inverse() Mat4 {
	s0 := m[0]*m[5] - m[4]*m[1]
	s1 := m[0]*m[6] - m[4]*m[2]
	s2 := m[0]*m[7] - m[4]*m[3]
	s3 := m[1]*m[6] - m[5]*m[2]
	s4 := m[1]*m[7] - m[5]*m[3]
	s5 := m[2]*m[7] - m[6]*m[3]

	c5 := m[10]*m[15] - m[14]*m[11]
	c4 := m[9]*m[15] - m[13]*m[11]
	c3 := m[9]*m[14] - m[13]*m[10]
	c2 := m[8]*m[15] - m[12]*m[11]
	c1 := m[8]*m[14] - m[12]*m[10]
	c0 := m[8]*m[13] - m[12]*m[9]

	det := s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0
	if math32.Abs(det) < 1e-12 {
		return Identity4()
	}
	invDet := 1 / det

	return Mat4{
		(m[5]*c5 - m[6]*c4 + m[7]*c3) * invDet,
		(-m[1]*c5 + m[2]*c4 - m[3]*c3) * invDet,
		(m[13]*s5 - m[14]*s4 + m[15]*s3) * invDet,
		(-m[9]*s5 + m[10]*s4 - m[11]*s3) * invDet,

		(-m[4]*c5 + m[6]*c2 - m[7]*c1) * invDet,
		(m[0]*c5 - m[2]*c2 + m[3]*c1) * invDet,
		(-m[12]*s5 + m[14]*s2 - m[15]*s1) * invDet,
		(m[8]*s5 - m[10]*s2 + m[11]*s1) * invDet,

		(m[4]*c4 - m[5]*c2 + m[7]*c0) * invDet,
		(-m[0]*c4 + m[1]*c2 - m[3]*c0) * invDet,
		(m[12]*s4 - m[13]*s2 + m[15]*s0) * invDet,
		(-m[8]*s4 + m[9]*s2 - m[11]*s0) * invDet,

		(-m[4]*c3 + m[5]*c1 - m[6]*c0) * invDet,
		(m[0]*c3 - m[1]*c1 + m[2]*c0) * invDet,
		(-m[12]*s3 + m[13]*s1 - m[14]*s0) * invDet,
		(m[8]*s3 - m[9]*s1 + m[10]*s0) * invDet,
	}
}

// IsIdentity reports whether m is exactly the identity matrix.
func (m Mat4) IsIdentity() bool {
	return m == Identity4()
}
