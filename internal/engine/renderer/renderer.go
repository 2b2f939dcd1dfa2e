// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/s3/internal/engine/renderer/shaders"
	"github.com/Faultbox/s3/internal/engine/shader"
	"github.com/Faultbox/s3/internal/logger"
	"github.com/Faultbox/s3/internal/scene"
	"github.com/Faultbox/s3/pkg/math"
)

// Uniform names shared with box.vert.
const (
	uniformProjection = "projectionMatrix"
	uniformModelView  = "modelViewMatrix"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
}

// Renderer draws colored meshes with a projection and model-view matrix.
type Renderer struct {
	config  Config
	program *shader.Program
	log     *zap.Logger

	// Box mesh
	boxVAO        uint32
	boxVBO        uint32
	boxEBO        uint32
	boxIndexCount int32
}

// New creates a new renderer and uploads the box mesh.
// Must be called after the OpenGL context is created.
func New(cfg Config, box *scene.Box) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	r.program, err = shader.NewProgram(shaders.BoxVertexShader, shaders.BoxFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	if err := r.program.RequireUniforms(uniformProjection, uniformModelView); err != nil {
		r.program.Delete()
		return nil, err
	}
	r.log.Debug("shader program created", zap.Uint32("program", r.program.ID))

	r.uploadBox(box)

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.boxVAO != 0 {
		gl.DeleteVertexArrays(1, &r.boxVAO)
	}
	if r.boxVBO != 0 {
		gl.DeleteBuffers(1, &r.boxVBO)
	}
	if r.boxEBO != 0 {
		gl.DeleteBuffers(1, &r.boxEBO)
	}
	if r.program != nil {
		r.program.Delete()
	}
}

// Resize handles drawable size changes.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Begin clears the frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawBox draws the box mesh.
func (r *Renderer) DrawBox(projection, modelView *math.Mat4) {
	r.program.Use()
	r.program.SetMat4(uniformProjection, projection)
	r.program.SetMat4(uniformModelView, modelView)

	gl.BindVertexArray(r.boxVAO)
	gl.DrawElements(gl.TRIANGLES, r.boxIndexCount, gl.UNSIGNED_SHORT, nil)
	gl.BindVertexArray(0)
}

// ReadPixels returns the current framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() []byte {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

func (r *Renderer) uploadBox(box *scene.Box) {
	vertices := box.Interleaved()
	const floatSize = 4
	stride := int32(scene.VertexStride * floatSize)

	gl.GenVertexArrays(1, &r.boxVAO)
	gl.BindVertexArray(r.boxVAO)

	gl.GenBuffers(1, &r.boxVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.boxVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*floatSize, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &r.boxEBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.boxEBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(box.Indices)*2, gl.Ptr(box.Indices), gl.STATIC_DRAW)
	r.boxIndexCount = int32(len(box.Indices))

	// Position (location = 0)
	gl.VertexAttribPointer(0, scene.PositionSize, gl.FLOAT, false, stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color (location = 1)
	gl.VertexAttribPointer(1, scene.ColorSize, gl.FLOAT, false, stride, gl.PtrOffset(scene.PositionSize*floatSize))
	gl.EnableVertexAttribArray(1)

	// The element buffer binding is VAO state, so only the array buffer is
	// unbound here.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("box uploaded",
		zap.Uint32("vao", r.boxVAO),
		zap.Int("vertices", box.VertexCount()),
		zap.Int32("indices", r.boxIndexCount),
	)
}
