package scene

import "github.com/Faultbox/s3/pkg/math"

// Spinner turns an object in front of the camera at fixed angular rates.
type Spinner struct {
	Rotation math.Euler
	Rates    math.Vec3 // radians per second about X, Y and Z
	Distance float32   // how far down -Z the object sits

	model     math.Mat4
	modelView math.Mat4
}

// NewSpinner creates a spinner with zero rotation.
func NewSpinner(rates math.Vec3, distance float32) *Spinner {
	return &Spinner{
		Rates:     rates,
		Distance:  distance,
		modelView: math.Identity(),
	}
}

// Advance turns the rotation by Rates * dt. Angles are left unwrapped.
func (s *Spinner) Advance(dt float32) {
	s.Rotation.X += s.Rates.X * dt
	s.Rotation.Y += s.Rates.Y * dt
	s.Rotation.Z += s.Rates.Z * dt
}

// ModelView rebuilds and returns the model-view matrix: the current rotation
// with its translation column set to (0, 0, -Distance).
func (s *Spinner) ModelView() *math.Mat4 {
	s.modelView.MakeRotationFromEuler(&s.Rotation)
	s.modelView.TranslateFromCartesianCoords(0, 0, -s.Distance, nil)
	return &s.modelView
}

// Model returns the rotation alone, placed at the origin, for use with a
// separate view matrix.
func (s *Spinner) Model() *math.Mat4 {
	return s.model.MakeRotationFromEuler(&s.Rotation)
}

// Orientation returns the current rotation as a quaternion.
func (s *Spinner) Orientation() math.Quat {
	var q math.Quat
	q.SetFromEuler(&s.Rotation)
	return q
}
