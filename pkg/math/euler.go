package math

import "github.com/chewxy/math32"

// gimbalLockThreshold is the |m31| at which SetFromRotationMatrix gives up the
// X angle.
const gimbalLockThreshold = 0.99999

// Euler holds intrinsic rotation angles in radians, applied Z first, then Y,
// then X; the composed matrix is Rz * Ry * Rx. Angles are never wrapped.
type Euler struct {
	X, Y, Z float32
}

// NewEuler returns angles with the given components.
func NewEuler(x, y, z float32) *Euler {
	return &Euler{X: x, Y: y, Z: z}
}

// Set assigns all three angles.
func (e *Euler) Set(x, y, z float32) *Euler {
	e.X = x
	e.Y = y
	e.Z = z
	return e
}

// Copy copies b into e.
func (e *Euler) Copy(b *Euler) *Euler {
	*e = *b
	return e
}

// Clone returns a new Euler equal to e.
func (e *Euler) Clone() *Euler {
	c := *e
	return &c
}

// Equals reports exact component equality.
func (e *Euler) Equals(b *Euler) bool {
	return e.X == b.X && e.Y == b.Y && e.Z == b.Z
}

// SetFromQuat extracts angles from a unit quaternion.
func (e *Euler) SetFromQuat(q *Quat) *Euler {
	x, y, z, w := q.X, q.Y, q.Z, q.W
	e.X = math32.Atan2(2*(w*x+y*z), 1-2*(x*x+y*y))
	e.Y = math32.Asin(Clamp(2*(w*y-z*x), -1, 1))
	e.Z = math32.Atan2(2*(w*z+x*y), 1-2*(y*y+z*z))
	return e
}

// SetFromRotationMatrix extracts angles from the upper 3x3 of m, which must be
// a pure (unscaled) rotation. In gimbal lock X is fixed at 0 and the whole
// remaining rotation goes to Z.
func (e *Euler) SetFromRotationMatrix(m *Mat4) *Euler {
	me := &m.Elements
	m11, m12 := me[0], me[4]
	m21, m22 := me[1], me[5]
	m31, m32, m33 := me[2], me[6], me[10]

	e.Y = math32.Asin(-Clamp(m31, -1, 1))

	if math32.Abs(m31) < gimbalLockThreshold {
		e.X = math32.Atan2(m32, m33)
		e.Z = math32.Atan2(m21, m11)
	} else {
		e.X = 0
		e.Z = math32.Atan2(-m12, m22)
	}

	return e
}
