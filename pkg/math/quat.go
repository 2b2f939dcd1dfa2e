package math

import "github.com/chewxy/math32"

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part. Only unit
// quaternions describe pure rotations; nothing here enforces that.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// NewQuat returns a new identity quaternion.
func NewQuat() *Quat {
	q := QuatIdentity()
	return &q
}

// Set assigns all four components.
func (q *Quat) Set(x, y, z, w float32) *Quat {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
	return q
}

// Copy copies b into q.
func (q *Quat) Copy(b *Quat) *Quat {
	*q = *b
	return q
}

// Clone returns a new quaternion equal to q.
func (q *Quat) Clone() *Quat {
	c := *q
	return &c
}

// Equals reports exact component equality.
func (q *Quat) Equals(b *Quat) bool {
	return q.X == b.X && q.Y == b.Y && q.Z == b.Z && q.W == b.W
}

// Length returns the quaternion norm.
func (q *Quat) Length() float32 {
	return math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
}

// Normalize scales q to unit length. A zero quaternion becomes the identity.
func (q *Quat) Normalize() *Quat {
	l := q.Length()
	if l == 0 {
		return q.Set(0, 0, 0, 1)
	}
	inv := 1 / l
	return q.Set(q.X*inv, q.Y*inv, q.Z*inv, q.W*inv)
}

// SetFromRotationMatrix sets q from the upper 3x3 of m, which must be a pure
// (unscaled) rotation. The branch is picked by trace, then by the largest
// diagonal entry, to keep the divisor away from zero.
func (q *Quat) SetFromRotationMatrix(m *Mat4) *Quat {
	me := &m.Elements
	m11, m12, m13 := me[0], me[4], me[8]
	m21, m22, m23 := me[1], me[5], me[9]
	m31, m32, m33 := me[2], me[6], me[10]

	trace := m11 + m22 + m33

	switch {
	case trace > 0:
		s := 0.5 / math32.Sqrt(trace+1)
		q.W = 0.25 / s
		q.X = (m32 - m23) * s
		q.Y = (m13 - m31) * s
		q.Z = (m21 - m12) * s

	case m11 > m22 && m11 > m33:
		s := 2 * math32.Sqrt(1+m11-m22-m33)
		q.W = (m32 - m23) / s
		q.X = 0.25 * s
		q.Y = (m12 + m21) / s
		q.Z = (m13 + m31) / s

	case m22 > m33:
		s := 2 * math32.Sqrt(1+m22-m11-m33)
		q.W = (m13 - m31) / s
		q.X = (m12 + m21) / s
		q.Y = 0.25 * s
		q.Z = (m23 + m32) / s

	default:
		s := 2 * math32.Sqrt(1+m33-m11-m22)
		q.W = (m21 - m12) / s
		q.X = (m13 + m31) / s
		q.Y = (m23 + m32) / s
		q.Z = 0.25 * s
	}

	return q
}

// SetFromEuler sets q to the rotation Rz * Ry * Rx described by e.
func (q *Quat) SetFromEuler(e *Euler) *Quat {
	s1, c1 := math32.Sincos(e.X * 0.5)
	s2, c2 := math32.Sincos(e.Y * 0.5)
	s3, c3 := math32.Sincos(e.Z * 0.5)

	q.X = s1*c2*c3 - c1*s2*s3
	q.Y = c1*s2*c3 + s1*c2*s3
	q.Z = c1*c2*s3 - s1*s2*c3
	q.W = c1*c2*c3 + s1*s2*s3

	return q
}
