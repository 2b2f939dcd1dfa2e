// Package scene holds the demo content: the box geometry, the spinner that
// turns it, and the frame clock that drives both.
package scene

import "github.com/Faultbox/s3/pkg/math"

// Vertex layout of Box.Interleaved.
const (
	PositionSize = 3
	ColorSize    = 4
	VertexStride = PositionSize + ColorSize
)

// Box is an axis-aligned cube centered on the origin. Each face has its own
// four vertices so it can carry a flat color.
type Box struct {
	Positions []float32 // 24 vertices, xyz
	Colors    []float32 // 24 vertices, rgba
	Indices   []uint16  // 36 indices, counter-clockwise from outside
}

// faceColors is white, red, green, blue, yellow, purple for the front, back,
// top, bottom, right and left faces.
var faceColors = [6][4]float32{
	{1, 1, 1, 1},
	{1, 0, 0, 1},
	{0, 1, 0, 1},
	{0, 0, 1, 1},
	{1, 1, 0, 1},
	{1, 0, 1, 1},
}

// unitBoxPositions spans [-1, 1] on every axis.
var unitBoxPositions = [24][3]float32{
	// Front
	{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	// Back
	{-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {1, -1, -1},
	// Top
	{-1, 1, -1}, {-1, 1, 1}, {1, 1, 1}, {1, 1, -1},
	// Bottom
	{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1},
	// Right
	{1, -1, -1}, {1, 1, -1}, {1, 1, 1}, {1, -1, 1},
	// Left
	{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1},
}

// NewBox builds a cube with the given half extent.
func NewBox(halfSize float32) *Box {
	b := &Box{
		Positions: make([]float32, 0, len(unitBoxPositions)*PositionSize),
		Colors:    make([]float32, 0, len(unitBoxPositions)*ColorSize),
		Indices:   make([]uint16, 0, 36),
	}

	for i, p := range unitBoxPositions {
		b.Positions = append(b.Positions, p[0]*halfSize, p[1]*halfSize, p[2]*halfSize)
		b.Colors = append(b.Colors, faceColors[i/4][:]...)
	}

	for face := uint16(0); face < 6; face++ {
		base := face * 4
		b.Indices = append(b.Indices,
			base, base+1, base+2,
			base, base+2, base+3,
		)
	}

	return b
}

// VertexCount returns the number of vertices.
func (b *Box) VertexCount() int {
	return len(b.Positions) / PositionSize
}

// Vertex returns vertex i's position.
func (b *Box) Vertex(i int) math.Vec3 {
	p := b.Positions[i*PositionSize:]
	return math.Vec3{X: p[0], Y: p[1], Z: p[2]}
}

// Interleaved returns position and color packed per vertex, VertexStride
// floats each.
func (b *Box) Interleaved() []float32 {
	n := b.VertexCount()
	out := make([]float32, 0, n*VertexStride)
	for i := 0; i < n; i++ {
		out = append(out, b.Positions[i*PositionSize:(i+1)*PositionSize]...)
		out = append(out, b.Colors[i*ColorSize:(i+1)*ColorSize]...)
	}
	return out
}

// Bounds returns the min and max corners of the box.
func (b *Box) Bounds() (minCorner, maxCorner math.Vec3) {
	if b.VertexCount() == 0 {
		return
	}
	minCorner = b.Vertex(0)
	maxCorner = minCorner
	for i := 1; i < b.VertexCount(); i++ {
		v := b.Vertex(i)
		minCorner.Set(min(minCorner.X, v.X), min(minCorner.Y, v.Y), min(minCorner.Z, v.Z))
		maxCorner.Set(max(maxCorner.X, v.X), max(maxCorner.Y, v.Y), max(maxCorner.Z, v.Z))
	}
	return minCorner, maxCorner
}
