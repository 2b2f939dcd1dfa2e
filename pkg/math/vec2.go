package math

import "github.com/chewxy/math32"

// Vec2 is a 2D vector.
type Vec2 struct {
	X, Y float32
}

// NewVec2 returns a vector with the given components.
func NewVec2(x, y float32) *Vec2 {
	return &Vec2{X: x, Y: y}
}

// Set assigns both components.
func (v *Vec2) Set(x, y float32) *Vec2 {
	v.X = x
	v.Y = y
	return v
}

// Length returns the magnitude.
func (v *Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Aspect returns X / Y, or 1 when Y is zero.
func (v *Vec2) Aspect() float32 {
	if v.Y == 0 {
		return 1
	}
	return v.X / v.Y
}
