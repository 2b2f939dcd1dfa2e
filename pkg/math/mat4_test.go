package math

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-5

func assertMat4InDelta(t *testing.T, want, got *Mat4, delta float64, msgAndArgs ...any) {
	t.Helper()
	assert.InDeltaSlice(t, want.Elements[:], got.Elements[:], delta, msgAndArgs...)
}

// assertOrthonormalBasis checks that the rotation block of m has unit,
// mutually perpendicular, finite columns.
func assertOrthonormalBasis(t *testing.T, m *Mat4) {
	t.Helper()
	e := m.Elements
	cols := [3]Vec3{
		{e[0], e[1], e[2]},
		{e[4], e[5], e[6]},
		{e[8], e[9], e[10]},
	}
	for i, c := range cols {
		for _, f := range []float32{c.X, c.Y, c.Z} {
			require.False(t, math.IsNaN(float64(f)) || math.IsInf(float64(f), 0), "column %d not finite: %v", i, c)
		}
		assert.InDelta(t, 1, c.Length(), 1e-4, "column %d length", i)
	}
	assert.InDelta(t, 0, cols[0].Dot(&cols[1]), 1e-4)
	assert.InDelta(t, 0, cols[0].Dot(&cols[2]), 1e-4)
	assert.InDelta(t, 0, cols[1].Dot(&cols[2]), 1e-4)
}

func TestIdentity(t *testing.T) {
	m := NewMat4()
	// Diagonal should be 1
	e := m.Elements
	if e[0] != 1 || e[5] != 1 || e[10] != 1 || e[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if e[1] != 0 || e[4] != 0 || e[12] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}

	m.MakeScale(2, 2, 2).Identity()
	assert.True(t, m.Equals(NewMat4()))
}

func TestSetRowMajor(t *testing.T) {
	var m Mat4
	m.Set(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	// Entry (row, col) lives at 4*col + row.
	assert.Equal(t, [16]float32{
		1, 5, 9, 13,
		2, 6, 10, 14,
		3, 7, 11, 15,
		4, 8, 12, 16,
	}, m.Elements)
}

func TestCopyCloneEquals(t *testing.T) {
	m := NewMat4().MakeTranslation(1, 2, 3)
	c := m.Clone()
	assert.True(t, m.Equals(c))

	c.Elements[0] = 9
	assert.False(t, m.Equals(c))

	m.Copy(c)
	assert.Equal(t, c.Elements, m.Elements)
}

func TestPerspective(t *testing.T) {
	near := float32(0.1)
	far := float32(100.0)

	m := NewMat4().Perspective(DegToRad(45), 1.0, near, far)

	f := float32(1 / math.Tan(math.Pi/8))
	assert.InDelta(t, f, m.Elements[0], 1e-5)
	assert.InDelta(t, f, m.Elements[5], 1e-5)
	assert.InDelta(t, (far+near)/(near-far), m.Elements[10], 1e-6)
	// Element [11] should be -1 for perspective projection
	assert.Equal(t, float32(-1), m.Elements[11])
	assert.InDelta(t, 2*far*near/(near-far), m.Elements[14], 1e-6)
	// Element [15] should be 0 for perspective projection
	assert.Equal(t, float32(0), m.Elements[15])
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := NewMat4().Perspective(DegToRad(60), 16.0/9, 1, 50)

	nearPt := Vec3{0, 0, -1}
	nearPt.ApplyMat4(m)
	assert.InDelta(t, -1, nearPt.Z, 1e-5)

	farPt := Vec3{0, 0, -50}
	farPt.ApplyMat4(m)
	assert.InDelta(t, 1, farPt.Z, 1e-5)
}

func TestOrtho(t *testing.T) {
	m := NewMat4().Ortho(-2, 2, -1, 1, 0.5, 10)

	lo := Vec3{-2, -1, -0.5}
	lo.ApplyMat4(m)
	assert.InDelta(t, -1, lo.X, tol)
	assert.InDelta(t, -1, lo.Y, tol)
	assert.InDelta(t, -1, lo.Z, tol)

	hi := Vec3{2, 1, -10}
	hi.ApplyMat4(m)
	assert.InDelta(t, 1, hi.X, tol)
	assert.InDelta(t, 1, hi.Y, tol)
	assert.InDelta(t, 1, hi.Z, tol)

	assert.Equal(t, float32(1), m.Elements[15])
}

func TestLookAt(t *testing.T) {
	eye := Vec3{0, 0, 5}
	target := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := NewMat4().MakeTranslation(4, 5, 6)
	m.LookAt(&eye, &target, &up)

	// Looking down -Z from +Z is the identity basis.
	want := NewMat4().MakeTranslation(4, 5, 6)
	assertMat4InDelta(t, want, m, tol)
	assertOrthonormalBasis(t, m)
}

func TestLookAtFromSide(t *testing.T) {
	eye := Vec3{3, 0, 0}
	target := Vec3{0, 0, 0}
	up := Vec3{0, 1, 0}

	m := NewMat4()
	m.LookAt(&eye, &target, &up)

	e := m.Elements
	// z axis points from target to eye, x = up × z.
	assert.InDeltaSlice(t, []float32{1, 0, 0}, e[8:11], tol)
	assert.InDeltaSlice(t, []float32{0, 0, -1}, e[0:3], tol)
	assert.InDeltaSlice(t, []float32{0, 1, 0}, e[4:7], tol)
	assertOrthonormalBasis(t, m)
}

func TestLookAtCoincidentEyeTarget(t *testing.T) {
	eye := Vec3{1, 2, 3}
	up := Vec3{0, 1, 0}

	m := NewMat4()
	m.LookAt(&eye, &eye, &up)

	assertOrthonormalBasis(t, m)
	assert.InDeltaSlice(t, []float32{0, 0, 1}, m.Elements[8:11], tol)
}

func TestLookAtParallelUp(t *testing.T) {
	tests := []struct {
		name        string
		eye, target Vec3
		up          Vec3
	}{
		{"above", Vec3{0, 5, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{"below", Vec3{0, -5, 0}, Vec3{0, 0, 0}, Vec3{0, 1, 0}},
		{"up is +Z", Vec3{0, 0, 5}, Vec3{0, 0, 0}, Vec3{0, 0, 1}},
		{"up is -Z", Vec3{0, 0, -2}, Vec3{0, 0, 0}, Vec3{0, 0, -1}},
		{"coincident with +Z up", Vec3{1, 1, 1}, Vec3{1, 1, 1}, Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMat4()
			m.LookAt(&tt.eye, &tt.target, &tt.up)
			assertOrthonormalBasis(t, m)
		})
	}
}

func TestLookAtReusesScratch(t *testing.T) {
	m := NewMat4()
	a := Vec3{0, 0, 5}
	b := Vec3{5, 0, 0}
	origin := Vec3{}
	up := Vec3{0, 1, 0}

	m.LookAt(&b, &origin, &up)
	m.LookAt(&a, &origin, &up)
	assertMat4InDelta(t, NewMat4(), m, tol)

	// Inputs are never written.
	assert.Equal(t, Vec3{0, 0, 5}, a)
	assert.Equal(t, Vec3{0, 1, 0}, up)
}

func TestMultiplyIdentity(t *testing.T) {
	m := NewMat4().MakeTranslation(1, 2, 3)
	id := NewMat4()

	var result Mat4
	m.Multiply(id, &result)
	assert.Equal(t, m.Elements, result.Elements)

	id.Multiply(m, &result)
	assert.Equal(t, m.Elements, result.Elements)
}

func TestMultiplyOrder(t *testing.T) {
	translate := NewMat4().MakeTranslation(10, 0, 0)
	scale := NewMat4().MakeScale(2, 2, 2)

	// translate * scale: scale first, then translate.
	var ts Mat4
	translate.Multiply(scale, &ts)
	p := Vec3{1, 1, 1}
	p.ApplyMat4(&ts)
	assert.Equal(t, Vec3{12, 2, 2}, p)

	var st Mat4
	scale.Multiply(translate, &st)
	p = Vec3{1, 1, 1}
	p.ApplyMat4(&st)
	assert.Equal(t, Vec3{22, 2, 2}, p)
}

func TestMultiplyAliasing(t *testing.T) {
	a := NewMat4().MakeRotationFromEuler(NewEuler(0.3, -0.7, 1.1))
	a.TranslateFromCartesianCoords(1, 2, 3, nil)
	b := NewMat4().Compose(NewQuat().SetFromEuler(NewEuler(1, 0.5, -0.2)), NewVec3(-4, 5, 6), NewVec3(1, 2, 3))

	var want Mat4
	a.Multiply(b, &want)

	// out == receiver
	got := a.Clone()
	got.Multiply(b, nil)
	assertMat4InDelta(t, &want, got, 0)

	// out == argument
	got = b.Clone()
	a.Multiply(got, got)
	assertMat4InDelta(t, &want, got, 0)

	// everything aliased
	sq := a.Clone()
	var wantSq Mat4
	a.Multiply(a, &wantSq)
	sq.Multiply(sq, sq)
	assertMat4InDelta(t, &wantSq, sq, 0)
}

func TestPremultiply(t *testing.T) {
	translate := NewMat4().MakeTranslation(10, 0, 0)
	scale := NewMat4().MakeScale(2, 2, 2)

	var want Mat4
	translate.Multiply(scale, &want)

	got := scale.Clone()
	got.Premultiply(translate, nil)
	assert.Equal(t, want.Elements, got.Elements)
}

func TestCompose(t *testing.T) {
	e := NewEuler(0.4, -0.2, 1.3)
	q := NewQuat().SetFromEuler(e)
	pos := NewVec3(5, -6, 7)
	scl := NewVec3(2, 3, 4)

	got := NewMat4().Compose(q, pos, scl)

	want := NewMat4().MakeRotationFromEuler(e)
	want.Multiply(NewMat4().MakeScale(2, 3, 4), nil)
	want.TranslateFromCartesianCoords(5, -6, 7, nil)

	assertMat4InDelta(t, want, got, tol)
	assert.Equal(t, [4]float32{0, 0, 0, 1}, [4]float32{got.Elements[3], got.Elements[7], got.Elements[11], got.Elements[15]})
}

func TestInvert(t *testing.T) {
	inputs := map[string]*Mat4{
		"identity":    NewMat4(),
		"translation": NewMat4().MakeTranslation(3, -4, 5),
		"trs": NewMat4().Compose(
			NewQuat().SetFromEuler(NewEuler(0.5, 1.2, -0.8)),
			NewVec3(1, 2, 3),
			NewVec3(0.5, 2, 1.5),
		),
		"perspective": NewMat4().Perspective(DegToRad(45), 1.5, 0.1, 100),
		"ortho":       NewMat4().Ortho(-3, 5, -2, 2, 1, 20),
		"dense": NewMat4().Set(
			2, 0, 1, 3,
			1, 3, 0, 2,
			0, 1, 4, 1,
			1, 0, 0, 2,
		),
	}
	for name, m := range inputs {
		t.Run(name, func(t *testing.T) {
			inv, err := m.Invert(NewMat4())
			require.NoError(t, err)

			var product Mat4
			m.Multiply(inv, &product)
			assertMat4InDelta(t, NewMat4(), &product, 1e-4)

			inv.Multiply(m, &product)
			assertMat4InDelta(t, NewMat4(), &product, 1e-4)
		})
	}
}

func TestInvertInPlace(t *testing.T) {
	m := NewMat4().MakeTranslation(3, -4, 5)
	got, err := m.Invert(nil)
	require.NoError(t, err)
	assert.Same(t, m, got)
	assert.Equal(t, NewMat4().MakeTranslation(-3, 4, -5).Elements, m.Elements)
}

func TestInvertSingular(t *testing.T) {
	m := NewMat4().Set(
		1, 2, 3, 4,
		0, 0, 0, 0,
		5, 6, 7, 8,
		0, 0, 0, 1,
	)
	assert.Equal(t, float32(0), m.Determinant())

	out := NewMat4().MakeTranslation(9, 9, 9)
	before := out.Elements

	got, err := m.Invert(out)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSingularMatrix))
	assert.Nil(t, got)
	assert.Equal(t, before, out.Elements, "output must be untouched on failure")

	var zero Mat4
	_, err = zero.Invert(nil)
	assert.ErrorIs(t, err, ErrSingularMatrix)
}

func TestDeterminant(t *testing.T) {
	assert.Equal(t, float32(1), NewMat4().Determinant())
	assert.Equal(t, float32(24), NewMat4().MakeScale(2, 3, 4).Determinant())
	assert.InDelta(t, 1, NewMat4().MakeRotationFromEuler(NewEuler(0.1, 0.2, 0.3)).Determinant(), tol)
}

func TestMakeTranslation(t *testing.T) {
	m := NewMat4().MakeScale(5, 5, 5)
	m.MakeTranslation(5, 10, 15)

	want := Identity()
	want.Elements[12], want.Elements[13], want.Elements[14] = 5, 10, 15
	assert.Equal(t, want.Elements, m.Elements)
}

func TestMakeRotationFromEulerAxes(t *testing.T) {
	// 90 degrees about Y takes +X to -Z.
	m := NewMat4().MakeRotationFromEuler(NewEuler(0, math.Pi/2, 0))
	p := Vec3{1, 0, 0}
	p.ApplyMat4(m)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, -1, p.Z, tol)

	// 90 degrees about Z takes +X to +Y.
	m.MakeRotationFromEuler(NewEuler(0, 0, math.Pi/2))
	p = Vec3{1, 0, 0}
	p.ApplyMat4(m)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 1, p.Y, tol)

	// Z is applied last: Rz(90) * Rx(90) takes +Y to +Z, then stays +Z.
	m.MakeRotationFromEuler(NewEuler(math.Pi/2, 0, math.Pi/2))
	p = Vec3{0, 1, 0}
	p.ApplyMat4(m)
	assert.InDelta(t, 0, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, 1, p.Z, tol)
}

func TestTranslateOverwrites(t *testing.T) {
	rot := NewMat4().MakeRotationFromEuler(NewEuler(0.2, 0.4, 0.6))
	rot.TranslateFromCartesianCoords(1, 1, 1, nil)
	rot.TranslateFromCartesianCoords(0, 0, -10, nil)

	assert.Equal(t, [4]float32{0, 0, -10, 1},
		[4]float32{rot.Elements[12], rot.Elements[13], rot.Elements[14], rot.Elements[15]})

	// The rotation block is untouched.
	want := NewMat4().MakeRotationFromEuler(NewEuler(0.2, 0.4, 0.6))
	assert.Equal(t, want.Elements[:12], rot.Elements[:12])

	var out Mat4
	rot.Translate(NewVec3(7, 8, 9), &out)
	assert.Equal(t, [16]float32{12: 7, 13: 8, 14: 9, 15: 1}, out.Elements)
	assert.Equal(t, float32(-10), rot.Elements[14])
}

func TestToArray(t *testing.T) {
	m := NewMat4().MakeTranslation(1, 2, 3)
	buf := make([]float32, 18)
	m.ToArray(buf, 2)
	assert.Equal(t, m.Elements[:], buf[2:])
	assert.Equal(t, []float32{0, 0}, buf[:2])
	assert.Equal(t, &m.Elements[0], m.Ptr())
}
