package math

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func rotationOf(q *Quat) *Mat4 {
	return NewMat4().Compose(q, &Vec3{}, &Vec3{1, 1, 1})
}

func TestQuatIdentity(t *testing.T) {
	q := NewQuat()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	assert.Equal(t, Identity().Elements, rotationOf(q).Elements)
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	q.Normalize()
	assert.InDelta(t, 1, q.Length(), 1e-6)

	var zero Quat
	zero.Normalize()
	assert.Equal(t, QuatIdentity(), zero)
}

func TestQuatCopyCloneEquals(t *testing.T) {
	q := NewQuat().Set(0.1, 0.2, 0.3, 0.9)
	c := q.Clone()
	assert.True(t, q.Equals(c))

	c.W = 0.8
	assert.False(t, q.Equals(c))

	q.Copy(c)
	assert.True(t, q.Equals(c))
}

func TestQuatSetFromEulerAxis(t *testing.T) {
	// 90 degrees around Y
	q := NewQuat().SetFromEuler(NewEuler(0, math.Pi/2, 0))

	assert.InDelta(t, math.Cos(math.Pi/4), q.W, 1e-6)
	assert.InDelta(t, math.Sin(math.Pi/4), q.Y, 1e-6)
	assert.InDelta(t, 0, q.X, 1e-6)
	assert.InDelta(t, 0, q.Z, 1e-6)
}

func TestQuatSetFromEulerMatchesMatrix(t *testing.T) {
	for _, e := range eulerSamples {
		q := NewQuat().SetFromEuler(&e)
		assert.InDelta(t, 1, q.Length(), 1e-6)
		assertMat4InDelta(t, NewMat4().MakeRotationFromEuler(&e), rotationOf(q), 1e-5, "euler %v", e)
	}
}

func TestQuatSetFromRotationMatrixBranches(t *testing.T) {
	tests := []struct {
		name  string
		euler Euler
	}{
		// trace > 0
		{"small rotation", Euler{0.2, -0.1, 0.3}},
		// 180 degrees about one axis makes that diagonal entry dominant.
		{"half turn X", Euler{math.Pi, 0, 0}},
		{"half turn Y", Euler{0, math.Pi, 0}},
		{"half turn Z", Euler{0, 0, math.Pi}},
		{"mixed negative trace", Euler{2.8, 0.3, -2.6}},
		{"mixed", Euler{-1.9, 1.2, 2.2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMat4().MakeRotationFromEuler(&tt.euler)

			var q Quat
			q.SetFromRotationMatrix(m)

			assert.InDelta(t, 1, q.Length(), 1e-5)
			assertMat4InDelta(t, m, rotationOf(&q), 1e-5)
		})
	}
}

func TestQuatSetFromRotationMatrixHalfTurn(t *testing.T) {
	m := NewMat4().MakeRotationFromEuler(NewEuler(math.Pi, 0, 0))
	var q Quat
	q.SetFromRotationMatrix(m)

	// m11 dominates, so X carries the rotation.
	assert.InDelta(t, 1, math.Abs(float64(q.X)), 1e-6)
	assert.InDelta(t, 0, q.W, 1e-6)
}

func TestQuatSetFromRotationMatrixIgnoresTranslation(t *testing.T) {
	e := NewEuler(0.3, 0.6, -0.9)
	m := NewMat4().MakeRotationFromEuler(e)
	moved := m.Clone().TranslateFromCartesianCoords(10, 20, 30, nil)

	var a, b Quat
	a.SetFromRotationMatrix(m)
	b.SetFromRotationMatrix(moved)
	assert.True(t, a.Equals(&b))
}

func TestQuatEulerMatrixAgree(t *testing.T) {
	e := NewEuler(0.9, -0.4, 1.6)
	m := NewMat4().MakeRotationFromEuler(e)

	var fromMatrix, fromEuler Quat
	fromMatrix.SetFromRotationMatrix(m)
	fromEuler.SetFromEuler(e)

	// q and -q are the same rotation.
	if fromMatrix.W*fromEuler.W < 0 {
		fromMatrix.Set(-fromMatrix.X, -fromMatrix.Y, -fromMatrix.Z, -fromMatrix.W)
	}
	assert.InDelta(t, fromEuler.X, fromMatrix.X, 1e-5)
	assert.InDelta(t, fromEuler.Y, fromMatrix.Y, 1e-5)
	assert.InDelta(t, fromEuler.Z, fromMatrix.Z, 1e-5)
	assert.InDelta(t, fromEuler.W, fromMatrix.W, 1e-5)
}
