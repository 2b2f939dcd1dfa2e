package scene

import (
	"github.com/Faultbox/s3/internal/engine/camera"
	"github.com/Faultbox/s3/pkg/math"
)

// StageConfig describes the projection and how the box is viewed. Angles are
// in degrees, spin rates in radians per second.
type StageConfig struct {
	FOV      float32
	Near     float32
	Far      float32
	Distance float32
	Phi      float32
	Theta    float32
	Orbit    bool
	Spin     math.Vec3
}

// Stage owns the matrices for one spinning box. Without Orbit the box sits
// Distance in front of a fixed camera, as in the classic demo. With Orbit the
// box spins at the origin and an OrbitCamera looks at it.
type Stage struct {
	Spinner *Spinner
	Camera  *camera.OrbitCamera // nil unless orbiting

	fovY, near, far float32
	projection      math.Mat4
	modelView       math.Mat4
	home            math.Vec3 // camera eye that ResetView returns to
}

// NewStage creates a stage with a square viewport; call Resize once the real
// drawable size is known.
func NewStage(cfg StageConfig) *Stage {
	s := &Stage{
		Spinner:    NewSpinner(cfg.Spin, cfg.Distance),
		fovY:       math.DegToRad(cfg.FOV),
		near:       cfg.Near,
		far:        cfg.Far,
		projection: math.Identity(),
		modelView:  math.Identity(),
	}
	if cfg.Orbit {
		s.Camera = camera.NewOrbitCamera(cfg.Distance, cfg.Phi, cfg.Theta)
		s.markHome()
	}
	s.Resize(math.Vec2{X: 1, Y: 1})
	return s
}

// Resize rebuilds the projection for a new viewport.
func (s *Stage) Resize(viewport math.Vec2) {
	s.projection.Perspective(s.fovY, viewport.Aspect(), s.near, s.far)
}

// Frame frames the box so it fills the view and makes that the home view.
// It only applies when orbiting.
func (s *Stage) Frame(box *Box) {
	if s.Camera == nil {
		return
	}
	lo, hi := box.Bounds()
	s.Camera.FitToBounds(lo, hi, s.fovY)
	s.markHome()
}

// OrbitBy swings the orbit camera around its target by dTheta radians.
func (s *Stage) OrbitBy(dTheta float32) {
	if s.Camera != nil {
		s.Camera.Orbit(dTheta)
	}
}

// ResetView moves the orbit camera back to the home eye position.
func (s *Stage) ResetView() {
	if s.Camera != nil {
		s.Camera.SetPosition(s.home)
	}
}

func (s *Stage) markHome() {
	s.home.SetFromSpherical(&s.Camera.Offset)
	s.home.Add(&s.Camera.Target, nil)
}

// Update advances the spin by dt seconds and applies this frame's pointer
// drag and wheel steps to the camera.
func (s *Stage) Update(dt, dragX, dragY, wheel float32) error {
	s.Spinner.Advance(dt)

	if s.Camera == nil {
		s.modelView = *s.Spinner.ModelView()
		return nil
	}

	if dragX != 0 || dragY != 0 {
		s.Camera.HandleDrag(dragX, dragY)
	}
	if wheel != 0 {
		s.Camera.HandleZoom(wheel)
	}
	if err := s.Camera.Update(); err != nil {
		return err
	}
	s.Camera.ViewMatrix().Multiply(s.Spinner.Model(), &s.modelView)
	return nil
}

// Projection returns the projection matrix.
func (s *Stage) Projection() *math.Mat4 {
	return &s.projection
}

// ModelView returns the model-view matrix as of the last Update.
func (s *Stage) ModelView() *math.Mat4 {
	return &s.modelView
}
