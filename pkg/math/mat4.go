package math

import (
	"errors"

	"github.com/chewxy/math32"
)

// ErrSingularMatrix is returned by Mat4.Invert when the determinant is exactly zero.
var ErrSingularMatrix = errors.New("mat4: can't invert, determinant is 0")

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [e0 e4 e8  e12]
//
//	[e1 e5 e9  e13]
//	[e2 e6 e10 e14]
//	[e3 e7 e11 e15]
//
// The axis fields are LookAt scratch space, so a single Mat4 must not run
// LookAt from two goroutines at once.
type Mat4 struct {
	Elements [16]float32

	xAxis, yAxis, zAxis Vec3
}

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{Elements: [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}}
}

// NewMat4 returns a new identity matrix.
func NewMat4() *Mat4 {
	m := Identity()
	return &m
}

func (m *Mat4) target(out *Mat4) *Mat4 {
	if out == nil {
		return m
	}
	return out
}

// Set assigns all entries. Arguments are given in row-major order
// (n11, n12, n13, n14, n21, ...) and stored column-major.
func (m *Mat4) Set(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float32,
) *Mat4 {
	te := &m.Elements

	te[0], te[4], te[8], te[12] = n11, n12, n13, n14
	te[1], te[5], te[9], te[13] = n21, n22, n23, n24
	te[2], te[6], te[10], te[14] = n31, n32, n33, n34
	te[3], te[7], te[11], te[15] = n41, n42, n43, n44

	return m
}

// Identity resets m to the identity matrix.
func (m *Mat4) Identity() *Mat4 {
	m.Elements = Identity().Elements
	return m
}

// Copy copies the elements of b into m.
func (m *Mat4) Copy(b *Mat4) *Mat4 {
	m.Elements = b.Elements
	return m
}

// Clone returns a new matrix with the same elements.
func (m *Mat4) Clone() *Mat4 {
	return &Mat4{Elements: m.Elements}
}

// Equals reports exact element equality.
func (m *Mat4) Equals(b *Mat4) bool {
	return m.Elements == b.Elements
}

// Perspective sets m to a right-handed OpenGL projection.
// fovY is in radians, aspect is width/height. View-space z in [-near, -far]
// maps to clip depth [-1, 1].
func (m *Mat4) Perspective(fovY, aspect, near, far float32) *Mat4 {
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)

	m.Elements = [16]float32{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, -1,
		0, 0, 2 * far * near * nf, 0,
	}
	return m
}

// Ortho sets m to an orthographic projection with depth range [-1, 1].
func (m *Mat4) Ortho(left, right, bottom, top, near, far float32) *Mat4 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)

	m.Elements = [16]float32{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}
	return m
}

// LookAt writes into the rotation block of m the basis of an object at eye
// facing target, with +Z pointing from target back to eye. The translation
// column is left untouched.
//
// Two degenerate inputs are patched rather than reported: eye == target uses
// +Z as the view axis, and an up vector parallel to the view axis nudges the
// view axis by 0.0001 before retrying. Nothing else is handled.
func (m *Mat4) LookAt(eye, target, up *Vec3) *Mat4 {
	x, y, z := &m.xAxis, &m.yAxis, &m.zAxis

	eye.Sub(target, z)
	if z.IsZero() {
		z.Z = 1
	}
	z.Normalize(nil)

	up.Cross(z, x)
	if x.IsZero() {
		if math32.Abs(up.Z) == 1 {
			z.X += 0.0001
		} else {
			z.Z += 0.0001
		}
		z.Normalize(nil)
		up.Cross(z, x)
	}

	x.Normalize(nil)
	z.Cross(x, y)

	te := &m.Elements
	te[0], te[1], te[2] = x.X, x.Y, x.Z
	te[4], te[5], te[6] = y.X, y.Y, y.Z
	te[8], te[9], te[10] = z.X, z.Y, z.Z

	return m
}

// Multiply writes m * b into out, so b is applied first to column vectors.
// out may alias m or b.
func (m *Mat4) Multiply(b *Mat4, out *Mat4) *Mat4 {
	out = m.target(out)

	te := &m.Elements
	a00, a01, a02, a03 := te[0], te[1], te[2], te[3]
	a10, a11, a12, a13 := te[4], te[5], te[6], te[7]
	a20, a21, a22, a23 := te[8], te[9], te[10], te[11]
	a30, a31, a32, a33 := te[12], te[13], te[14], te[15]

	be := &b.Elements
	oe := &out.Elements
	for col := 0; col < 16; col += 4 {
		b0, b1, b2, b3 := be[col], be[col+1], be[col+2], be[col+3]
		oe[col] = b0*a00 + b1*a10 + b2*a20 + b3*a30
		oe[col+1] = b0*a01 + b1*a11 + b2*a21 + b3*a31
		oe[col+2] = b0*a02 + b1*a12 + b2*a22 + b3*a32
		oe[col+3] = b0*a03 + b1*a13 + b2*a23 + b3*a33
	}

	return out
}

// Premultiply writes a * m into out.
func (m *Mat4) Premultiply(a *Mat4, out *Mat4) *Mat4 {
	out = m.target(out)
	var tmp Mat4
	a.Multiply(m, &tmp)
	out.Elements = tmp.Elements
	return out
}

// Compose sets m to the transform that scales, then rotates by q, then
// translates by position.
func (m *Mat4) Compose(q *Quat, position, scale *Vec3) *Mat4 {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	x2, y2, z2 := x+x, y+y, z+z
	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	sx, sy, sz := scale.X, scale.Y, scale.Z

	m.Elements = [16]float32{
		(1 - (yy + zz)) * sx, (xy + wz) * sx, (xz - wy) * sx, 0,
		(xy - wz) * sy, (1 - (xx + zz)) * sy, (yz + wx) * sy, 0,
		(xz + wy) * sz, (yz - wx) * sz, (1 - (xx + yy)) * sz, 0,
		position.X, position.Y, position.Z, 1,
	}
	return m
}

// minors returns the twelve 2x2 sub-determinants used by Determinant and Invert.
func (m *Mat4) minors() (b [12]float32) {
	te := &m.Elements
	a00, a01, a02, a03 := te[0], te[1], te[2], te[3]
	a10, a11, a12, a13 := te[4], te[5], te[6], te[7]
	a20, a21, a22, a23 := te[8], te[9], te[10], te[11]
	a30, a31, a32, a33 := te[12], te[13], te[14], te[15]

	b[0] = a00*a11 - a01*a10
	b[1] = a00*a12 - a02*a10
	b[2] = a00*a13 - a03*a10
	b[3] = a01*a12 - a02*a11
	b[4] = a01*a13 - a03*a11
	b[5] = a02*a13 - a03*a12
	b[6] = a20*a31 - a21*a30
	b[7] = a20*a32 - a22*a30
	b[8] = a20*a33 - a23*a30
	b[9] = a21*a32 - a22*a31
	b[10] = a21*a33 - a23*a31
	b[11] = a22*a33 - a23*a32
	return b
}

func determinant(b *[12]float32) float32 {
	return b[0]*b[11] - b[1]*b[10] + b[2]*b[9] + b[3]*b[8] - b[4]*b[7] + b[5]*b[6]
}

// Determinant returns the determinant of m.
func (m *Mat4) Determinant() float32 {
	b := m.minors()
	return determinant(&b)
}

// Invert writes the inverse of m into out. It returns ErrSingularMatrix and
// leaves out unchanged when the determinant is exactly zero.
func (m *Mat4) Invert(out *Mat4) (*Mat4, error) {
	b := m.minors()
	det := determinant(&b)
	if det == 0 {
		return nil, ErrSingularMatrix
	}
	det = 1 / det

	te := &m.Elements
	a00, a01, a02, a03 := te[0], te[1], te[2], te[3]
	a10, a11, a12, a13 := te[4], te[5], te[6], te[7]
	a20, a21, a22, a23 := te[8], te[9], te[10], te[11]
	a30, a31, a32, a33 := te[12], te[13], te[14], te[15]

	out = m.target(out)
	out.Elements = [16]float32{
		(a11*b[11] - a12*b[10] + a13*b[9]) * det,
		(a02*b[10] - a01*b[11] - a03*b[9]) * det,
		(a31*b[5] - a32*b[4] + a33*b[3]) * det,
		(a22*b[4] - a21*b[5] - a23*b[3]) * det,

		(a12*b[8] - a10*b[11] - a13*b[7]) * det,
		(a00*b[11] - a02*b[8] + a03*b[7]) * det,
		(a32*b[2] - a30*b[5] - a33*b[1]) * det,
		(a20*b[5] - a22*b[2] + a23*b[1]) * det,

		(a10*b[10] - a11*b[8] + a13*b[6]) * det,
		(a01*b[8] - a00*b[10] - a03*b[6]) * det,
		(a30*b[4] - a31*b[2] + a33*b[0]) * det,
		(a21*b[2] - a20*b[4] - a23*b[0]) * det,

		(a11*b[7] - a10*b[9] - a12*b[6]) * det,
		(a00*b[9] - a01*b[7] + a02*b[6]) * det,
		(a31*b[1] - a30*b[3] - a32*b[0]) * det,
		(a20*b[3] - a21*b[1] + a22*b[0]) * det,
	}
	return out, nil
}

// MakeTranslation resets m to a pure translation.
func (m *Mat4) MakeTranslation(x, y, z float32) *Mat4 {
	return m.Set(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// MakeScale resets m to a pure scale.
func (m *Mat4) MakeScale(x, y, z float32) *Mat4 {
	return m.Set(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// MakeRotationFromEuler resets m to the rotation Rz * Ry * Rx described by e.
func (m *Mat4) MakeRotationFromEuler(e *Euler) *Mat4 {
	c1, s1 := math32.Cos(e.X), math32.Sin(e.X)
	c2, s2 := math32.Cos(e.Y), math32.Sin(e.Y)
	c3, s3 := math32.Cos(e.Z), math32.Sin(e.Z)

	c1c3, c1s3 := c1*c3, c1*s3
	s1c3, s1s3 := s1*c3, s1*s3

	return m.Set(
		c2*c3, s1c3*s2-c1s3, s1s3+c1c3*s2, 0,
		c2*s3, c1c3+s1s3*s2, c1s3*s2-s1c3, 0,
		-s2, c2*s1, c1*c2, 0,
		0, 0, 0, 1,
	)
}

// Translate writes v into the translation column of out.
// See TranslateFromCartesianCoords.
func (m *Mat4) Translate(v *Vec3, out *Mat4) *Mat4 {
	return m.TranslateFromCartesianCoords(v.X, v.Y, v.Z, out)
}

// TranslateFromCartesianCoords overwrites the translation column of out with
// (x, y, z, 1). It does not compose with the existing transform; the rotation
// and scale block of out is left as it was.
func (m *Mat4) TranslateFromCartesianCoords(x, y, z float32, out *Mat4) *Mat4 {
	out = m.target(out)
	oe := &out.Elements
	oe[12] = x
	oe[13] = y
	oe[14] = z
	oe[15] = 1
	return out
}

// ToArray writes the 16 elements in storage order into dst starting at offset.
func (m *Mat4) ToArray(dst []float32, offset int) []float32 {
	copy(dst[offset:offset+16], m.Elements[:])
	return dst
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m.Elements[0]
}
