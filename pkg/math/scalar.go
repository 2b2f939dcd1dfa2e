// Package math provides the transform types used by the renderer: vectors, a
// column-major 4x4 matrix, quaternions, Z-Y-X Euler angles and spherical
// coordinates.
//
// Operations mutate their receiver unless an explicit output target is passed.
// A nil target always means the receiver.
package math

import "github.com/chewxy/math32"

const (
	// Deg2Rad is the number of radians per degree.
	Deg2Rad = math32.Pi / 180
	// Rad2Deg is the number of degrees per radian.
	Rad2Deg = 180 / math32.Pi
)

// DegToRad converts degrees to radians.
func DegToRad(degrees float32) float32 {
	return degrees * Deg2Rad
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float32) float32 {
	return radians * Rad2Deg
}

// Clamp limits value to [minValue, maxValue].
func Clamp(value, minValue, maxValue float32) float32 {
	return math32.Max(minValue, math32.Min(value, maxValue))
}
