// Package camera provides camera implementations for 3D rendering.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/s3/pkg/math"
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// OrbitCamera orbits around a target point. Its position relative to the
// target is kept in spherical coordinates.
type OrbitCamera struct {
	Target math.Vec3
	Offset math.Spherical

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPhi      float32
	MaxPhi      float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	eye   math.Vec3
	world math.Mat4 // camera to world
	view  math.Mat4 // world to camera
}

// NewOrbitCamera creates an orbit camera at distance from the origin. phi and
// theta are in degrees: phi is measured from +Y, theta from +Z toward +X.
func NewOrbitCamera(distance, phiDeg, thetaDeg float32) *OrbitCamera {
	c := &OrbitCamera{
		MinDistance:     0.5,
		MaxDistance:     500,
		MinPhi:          math.DegToRad(5),
		MaxPhi:          math.DegToRad(175),
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		world:           math.Identity(),
		view:            math.Identity(),
	}
	c.Offset.Set(distance, math.DegToRad(phiDeg), math.DegToRad(thetaDeg))
	return c
}

// Update rebuilds the camera matrices from Target and Offset.
func (c *OrbitCamera) Update() error {
	c.eye.SetFromSpherical(&c.Offset)
	c.eye.Add(&c.Target, nil)

	c.world.LookAt(&c.eye, &c.Target, &worldUp)
	c.world.Translate(&c.eye, nil)

	if _, err := c.world.Invert(&c.view); err != nil {
		return err
	}
	return nil
}

// Position returns the camera position in world space as of the last Update.
func (c *OrbitCamera) Position() math.Vec3 {
	var p math.Vec3
	p.SetFromMatrixPosition(&c.world)
	return p
}

// Orientation returns the camera rotation as of the last Update.
func (c *OrbitCamera) Orientation() math.Quat {
	var q math.Quat
	q.SetFromRotationMatrix(&c.world)
	return q
}

// WorldMatrix returns the camera-to-world transform.
func (c *OrbitCamera) WorldMatrix() *math.Mat4 {
	return &c.world
}

// ViewMatrix returns the world-to-camera transform.
func (c *OrbitCamera) ViewMatrix() *math.Mat4 {
	return &c.view
}

// SetPosition moves the camera to eye, keeping the current target.
func (c *OrbitCamera) SetPosition(eye math.Vec3) {
	var offset math.Vec3
	eye.Sub(&c.Target, &offset)
	c.Offset.SetFromVec3(&offset)
}

// HandleDrag updates the orbit angles from a mouse drag delta. Phi is held
// within [MinPhi, MaxPhi] and never reaches a pole, even when the limits are
// widened to 0 and π.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.Offset.Theta -= deltaX * c.DragSensitivity
	c.Offset.Phi -= deltaY * c.DragSensitivity
	c.Offset.Phi = math.Clamp(c.Offset.Phi, c.MinPhi, c.MaxPhi)
	c.Offset.MakeSafe()
}

// Orbit advances the azimuth by dTheta radians, wrapping into (-2π, 2π).
func (c *OrbitCamera) Orbit(dTheta float32) {
	c.Offset.Theta = math32.Mod(c.Offset.Theta+dTheta, 2*math32.Pi)
}

// HandleZoom updates distance based on scroll wheel delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	r := c.Offset.Radius - delta*c.Offset.Radius*c.ZoomSensitivity
	c.Offset.Radius = math.Clamp(r, c.MinDistance, c.MaxDistance)
}

// FitToBounds aims at the center of the box and backs off until its bounding
// sphere fills a vertical field of view of fovY radians. The distance is
// raised to MinDistance for tiny boxes; for boxes too large to fit, MaxDistance
// is raised to the fitted distance so later zooming stays consistent.
func (c *OrbitCamera) FitToBounds(boxMin, boxMax math.Vec3, fovY float32) {
	boxMin.Add(&boxMax, &c.Target)
	c.Target.Scale(0.5, nil)

	var extent math.Vec3
	boxMax.Sub(&boxMin, &extent)
	radius := extent.Length() / 2

	c.Offset.Radius = radius / math32.Sin(fovY/2)
	if c.Offset.Radius < c.MinDistance {
		c.Offset.Radius = c.MinDistance
	}
	if c.Offset.Radius > c.MaxDistance {
		c.MaxDistance = c.Offset.Radius
	}
}
