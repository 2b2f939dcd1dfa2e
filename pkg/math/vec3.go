package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 returns a vector with the given components.
func NewVec3(x, y, z float32) *Vec3 {
	return &Vec3{X: x, Y: y, Z: z}
}

// target returns out, or v when out is nil.
func (v *Vec3) target(out *Vec3) *Vec3 {
	if out == nil {
		return v
	}
	return out
}

// Set assigns all three components.
func (v *Vec3) Set(x, y, z float32) *Vec3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// SetScalar assigns s to every component.
func (v *Vec3) SetScalar(s float32) *Vec3 {
	return v.Set(s, s, s)
}

// IsZero reports whether every component is exactly zero.
func (v *Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Copy copies b into v.
func (v *Vec3) Copy(b *Vec3) *Vec3 {
	*v = *b
	return v
}

// Clone returns a new vector equal to v.
func (v *Vec3) Clone() *Vec3 {
	c := *v
	return &c
}

// Equals reports exact component equality.
func (v *Vec3) Equals(b *Vec3) bool {
	return v.X == b.X && v.Y == b.Y && v.Z == b.Z
}

// Add writes v + b into out.
func (v *Vec3) Add(b *Vec3, out *Vec3) *Vec3 {
	out = v.target(out)
	out.X = v.X + b.X
	out.Y = v.Y + b.Y
	out.Z = v.Z + b.Z
	return out
}

// Sub writes v - b into out.
func (v *Vec3) Sub(b *Vec3, out *Vec3) *Vec3 {
	out = v.target(out)
	out.X = v.X - b.X
	out.Y = v.Y - b.Y
	out.Z = v.Z - b.Z
	return out
}

// Dot returns the dot product.
func (v *Vec3) Dot(b *Vec3) float32 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Length returns the magnitude.
func (v *Vec3) Length() float32 {
	return math32.Sqrt(v.Length2())
}

// Length2 returns the squared magnitude.
func (v *Vec3) Length2() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Normalize writes v scaled to unit length into out.
// A zero vector yields non-finite components; callers must check IsZero first.
func (v *Vec3) Normalize(out *Vec3) *Vec3 {
	return v.Scale(1/v.Length(), out)
}

// Scale writes v * s into out.
func (v *Vec3) Scale(s float32, out *Vec3) *Vec3 {
	out = v.target(out)
	out.X = v.X * s
	out.Y = v.Y * s
	out.Z = v.Z * s
	return out
}

// Cross writes the right-handed cross product v × b into out.
// out may alias v or b.
func (v *Vec3) Cross(b *Vec3, out *Vec3) *Vec3 {
	ax, ay, az := v.X, v.Y, v.Z
	bx, by, bz := b.X, b.Y, b.Z

	out = v.target(out)
	out.X = ay*bz - az*by
	out.Y = az*bx - ax*bz
	out.Z = ax*by - ay*bx
	return out
}

// SetFromMatrixPosition copies the translation column of m.
func (v *Vec3) SetFromMatrixPosition(m *Mat4) *Vec3 {
	v.X = m.Elements[12]
	v.Y = m.Elements[13]
	v.Z = m.Elements[14]
	return v
}

// SetFromSpherical converts s to cartesian coordinates.
func (v *Vec3) SetFromSpherical(s *Spherical) *Vec3 {
	return v.SetFromSphericalCoords(s.Radius, s.Phi, s.Theta)
}

// SetFromSphericalCoords converts a radius, an inclination from +Y and an
// azimuth measured from +Z toward +X to cartesian coordinates.
func (v *Vec3) SetFromSphericalCoords(radius, phi, theta float32) *Vec3 {
	sinPhiRadius := math32.Sin(phi) * radius
	v.X = sinPhiRadius * math32.Sin(theta)
	v.Y = math32.Cos(phi) * radius
	v.Z = sinPhiRadius * math32.Cos(theta)
	return v
}

// ApplyMat4 transforms v as a point (w = 1) by m, dividing by the resulting w.
func (v *Vec3) ApplyMat4(m *Mat4) *Vec3 {
	e := &m.Elements
	x, y, z := v.X, v.Y, v.Z
	w := e[3]*x + e[7]*y + e[11]*z + e[15]
	if w == 0 {
		w = 1
	}
	v.X = (e[0]*x + e[4]*y + e[8]*z + e[12]) / w
	v.Y = (e[1]*x + e[5]*y + e[9]*z + e[13]) / w
	v.Z = (e[2]*x + e[6]*y + e[10]*z + e[14]) / w
	return v
}

// TransformDirection transforms v by the upper 3x3 of m, ignoring translation.
func (v *Vec3) TransformDirection(m *Mat4) *Vec3 {
	e := &m.Elements
	x, y, z := v.X, v.Y, v.Z
	v.X = e[0]*x + e[4]*y + e[8]*z
	v.Y = e[1]*x + e[5]*y + e[9]*z
	v.Z = e[2]*x + e[6]*y + e[10]*z
	return v
}

// ToArray writes X, Y, Z into dst starting at offset.
func (v *Vec3) ToArray(dst []float32, offset int) []float32 {
	dst[offset] = v.X
	dst[offset+1] = v.Y
	dst[offset+2] = v.Z
	return dst
}
