package math

import "github.com/chewxy/math32"

// sphericalEps keeps MakeSafe away from the poles.
const sphericalEps = 0.000001

// Spherical is a point in spherical coordinates: Phi is the inclination from
// +Y and Theta the azimuth in the XZ plane, measured from +Z toward +X.
type Spherical struct {
	Radius float32
	Phi    float32
	Theta  float32
}

// NewSpherical returns a unit-radius point on +Y.
func NewSpherical() *Spherical {
	return &Spherical{Radius: 1}
}

// Set assigns all three coordinates.
func (s *Spherical) Set(radius, phi, theta float32) *Spherical {
	s.Radius = radius
	s.Phi = phi
	s.Theta = theta
	return s
}

// Copy copies b into s.
func (s *Spherical) Copy(b *Spherical) *Spherical {
	*s = *b
	return s
}

// Clone returns a new Spherical equal to s.
func (s *Spherical) Clone() *Spherical {
	c := *s
	return &c
}

// MakeSafe clamps Phi just inside (0, π) so LookAt never sees an up vector
// parallel to the view axis.
func (s *Spherical) MakeSafe() *Spherical {
	s.Phi = Clamp(s.Phi, sphericalEps, math32.Pi-sphericalEps)
	return s
}

// SetFromVec3 converts v to spherical coordinates.
func (s *Spherical) SetFromVec3(v *Vec3) *Spherical {
	return s.SetFromCartesianCoords(v.X, v.Y, v.Z)
}

// SetFromCartesianCoords converts (x, y, z) to spherical coordinates. The
// origin maps to radius 0 with both angles 0.
func (s *Spherical) SetFromCartesianCoords(x, y, z float32) *Spherical {
	s.Radius = math32.Sqrt(x*x + y*y + z*z)
	if s.Radius == 0 {
		s.Theta = 0
		s.Phi = 0
		return s
	}
	s.Theta = math32.Atan2(x, z)
	s.Phi = math32.Acos(Clamp(y/s.Radius, -1, 1))
	return s
}
