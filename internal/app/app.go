// Package app implements the demo's main loop.
package app

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/s3/internal/config"
	"github.com/Faultbox/s3/internal/engine/debug"
	"github.com/Faultbox/s3/internal/engine/input"
	"github.com/Faultbox/s3/internal/engine/renderer"
	"github.com/Faultbox/s3/internal/engine/window"
	"github.com/Faultbox/s3/internal/logger"
	"github.com/Faultbox/s3/internal/scene"
	"github.com/Faultbox/s3/pkg/math"
)

const (
	screenshotDir = "screenshots"
	orbitStep     = 15 * math.Deg2Rad
)

// App is the running demo.
type App struct {
	cfg      *config.Config
	running  bool
	paused   bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	stage    *scene.Stage
	clock    *scene.FrameClock
	shots    *debug.Screenshots
	log      *zap.Logger
}

// New creates the window, GL resources and scene.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	a.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Bool("orbit", cfg.Camera.Orbit),
	)

	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	box := scene.NewBox(1)

	// Renderer must come after the window, which owns the GL context.
	fbW, fbH := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      fbW,
		Height:     fbH,
		ClearColor: [4]float32{0, 0, 0, 1},
	}, box)
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.stage = scene.NewStage(scene.StageConfig{
		FOV:      cfg.Camera.FOV,
		Near:     cfg.Camera.Near,
		Far:      cfg.Camera.Far,
		Distance: cfg.Camera.Distance,
		Phi:      cfg.Camera.Phi,
		Theta:    cfg.Camera.Theta,
		Orbit:    cfg.Camera.Orbit,
		Spin:     math.Vec3{X: cfg.Spin.X, Y: cfg.Spin.Y, Z: cfg.Spin.Z},
	})
	a.stage.Frame(box)
	a.stage.Resize(a.window.Viewport())

	a.input = input.New()
	a.clock = scene.NewFrameClock()
	a.shots = debug.NewScreenshots(screenshotDir, "box")

	a.log.Info("initialized")
	return a, nil
}

// Run runs the main loop until the window closes or Escape is pressed.
func (a *App) Run() error {
	a.running = true
	a.log.Info("starting main loop")

	for a.running {
		dt := a.clock.Tick()

		if a.input.Update() {
			a.running = false
			break
		}
		a.handleEvents()

		if a.paused {
			dt = 0
		}
		drag := a.input.Drag()
		if err := a.stage.Update(dt, drag.DeltaX, drag.DeltaY, drag.Wheel); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		a.renderer.Begin()
		a.renderer.DrawBox(a.stage.Projection(), a.stage.ModelView())
		if a.input.IsKeyPressed(sdl.SCANCODE_F12) {
			a.screenshot()
		}
		a.window.SwapBuffers()

		if fps, ok := a.clock.FPS(); ok {
			a.log.Debug("fps",
				zap.Float64("fps", fps),
				zap.Float32("dt", dt),
			)
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, event := range a.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := a.window.DrawableSize()
			a.renderer.Resize(w, h)
			a.stage.Resize(a.window.Viewport())
		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				a.running = false
			case sdl.SCANCODE_SPACE:
				a.paused = !a.paused
				a.log.Info("pause toggled", zap.Bool("paused", a.paused))
			case sdl.SCANCODE_O:
				a.logOrientation()
			case sdl.SCANCODE_LEFT:
				a.stage.OrbitBy(-orbitStep)
			case sdl.SCANCODE_RIGHT:
				a.stage.OrbitBy(orbitStep)
			case sdl.SCANCODE_R:
				a.stage.ResetView()
			}
		}
	}
}

func (a *App) logOrientation() {
	q := a.stage.Spinner.Orientation()
	rot := a.stage.Spinner.Rotation
	fields := []zap.Field{
		zap.Float32s("euler_deg", []float32{
			math.RadToDeg(rot.X), math.RadToDeg(rot.Y), math.RadToDeg(rot.Z),
		}),
		zap.Float32s("quat", []float32{q.X, q.Y, q.Z, q.W}),
	}
	if a.stage.Camera != nil {
		eye := a.stage.Camera.Position()
		forward := math.Vec3{Z: -1}
		forward.TransformDirection(a.stage.Camera.WorldMatrix())
		fields = append(fields,
			zap.Float32s("eye", []float32{eye.X, eye.Y, eye.Z}),
			zap.Float32s("forward", []float32{forward.X, forward.Y, forward.Z}),
		)
	}
	a.log.Info("orientation", fields...)
}

func (a *App) screenshot() {
	w, h := a.renderer.Size()
	path, err := a.shots.Save(a.renderer.ReadPixels(), w, h)
	if err != nil {
		a.log.Warn("screenshot failed", zap.Error(err))
		return
	}
	a.log.Info("screenshot saved", zap.String("path", path))
}

// Close releases GL and window resources.
func (a *App) Close() {
	a.log.Info("closing")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
