// Package renderer provides OpenGL rendering functionality.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/scene-gallery/internal/engine/debug"
	"github.com/Faultbox/scene-gallery/internal/engine/geometry"
	"github.com/Faultbox/scene-gallery/internal/engine/lighting"
	"github.com/Faultbox/scene-gallery/internal/engine/renderer/shaders"
	"github.com/Faultbox/scene-gallery/internal/engine/shader"
	"github.com/Faultbox/scene-gallery/internal/logger"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Drawable is one mesh instance to draw this frame.
type Drawable struct {
	Mesh        *geometry.Mesh
	Model       math.Mat4
	Color       [3]float32
	Wireframe   bool
	DoubleSided bool
	Unlit       bool
}

// Frame carries the per-frame camera and lighting state.
type Frame struct {
	ViewProj   math.Mat4
	Lights     *lighting.Buffer
	Background [3]float32
	Helpers    []debug.LineVertex
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config

	meshProgram *shader.Program
	lineProgram *shader.Program

	meshes map[*geometry.Mesh]*gpuMesh

	lineVAO      uint32
	lineVBO      uint32
	lineCapacity int
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		meshes: make(map[*geometry.Mesh]*gpuMesh),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	rendererName := gl.GoStr(gl.GetString(gl.RENDERER))
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", rendererName),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.MULTISAMPLE)

	var err error
	r.meshProgram, err = shader.New("mesh", shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, err
	}
	r.lineProgram, err = shader.New("line", shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		r.meshProgram.Delete()
		return nil, err
	}

	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.ReleaseMeshes()
	if r.lineVAO != 0 {
		gl.DeleteVertexArrays(1, &r.lineVAO)
	}
	if r.lineVBO != 0 {
		gl.DeleteBuffers(1, &r.lineVBO)
	}
	r.meshProgram.Delete()
	r.lineProgram.Delete()
}

// Resize handles framebuffer resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Aspect returns the framebuffer aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// ReleaseMeshes frees every uploaded mesh, as when a scene is unmounted.
func (r *Renderer) ReleaseMeshes() {
	for m, g := range r.meshes {
		g.delete()
		delete(r.meshes, m)
	}
}

func (r *Renderer) mesh(m *geometry.Mesh) *gpuMesh {
	g, ok := r.meshes[m]
	if !ok {
		g = uploadMesh(m)
		r.meshes[m] = g
		logger.Debug("mesh uploaded",
			zap.Int("vertices", len(m.Vertices)),
			zap.Int("indices", len(m.Indices)),
		)
	}
	return g
}

// Render clears the frame and draws every drawable followed by the helpers.
func (r *Renderer) Render(f Frame, drawables []Drawable) {
	gl.ClearColor(f.Background[0], f.Background[1], f.Background[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.meshProgram.Use()
	r.meshProgram.SetMat4("uViewProj", f.ViewProj)
	r.uploadLights(f.Lights)

	for _, d := range drawables {
		if d.Mesh == nil {
			continue
		}
		if d.Wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		}
		r.meshProgram.SetMat4("uModel", d.Model)
		r.meshProgram.SetVec3("uColor", d.Color)
		r.meshProgram.SetInt("uUnlit", boolInt(d.Unlit || d.Mesh.Mode == geometry.Lines))
		r.meshProgram.SetInt("uDoubleSided", boolInt(d.DoubleSided))
		r.mesh(d.Mesh).draw()
		if d.Wireframe {
			gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
		}
	}

	r.drawLines(f.ViewProj, f.Helpers)
	gl.BindVertexArray(0)
}

func (r *Renderer) uploadLights(b *lighting.Buffer) {
	p := r.meshProgram
	if b == nil {
		p.SetVec3("uAmbient", [3]float32{1, 1, 1})
		p.SetInt("uDirCount", 0)
		p.SetInt("uPointCount", 0)
		return
	}
	p.SetVec3("uAmbient", b.Ambient)
	p.SetInt("uDirCount", int32(b.DirCount))
	gl.Uniform3fv(p.Uniform("uDirDirections"), lighting.MaxDirectionalLights, &b.DirDirections[0])
	gl.Uniform3fv(p.Uniform("uDirColors"), lighting.MaxDirectionalLights, &b.DirColors[0])
	p.SetInt("uPointCount", int32(b.PointCount))
	gl.Uniform3fv(p.Uniform("uPointPositions"), lighting.MaxPointLights, &b.PointPositions[0])
	gl.Uniform3fv(p.Uniform("uPointColors"), lighting.MaxPointLights, &b.PointColors[0])
	gl.Uniform1fv(p.Uniform("uPointRanges"), lighting.MaxPointLights, &b.PointRanges[0])
}

func (r *Renderer) drawLines(viewProj math.Mat4, lines []debug.LineVertex) {
	if len(lines) == 0 {
		return
	}
	r.lineProgram.Use()
	r.lineProgram.SetMat4("uViewProj", viewProj)

	stride := int32(unsafe.Sizeof(debug.LineVertex{}))
	size := len(lines) * int(stride)

	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	if len(lines) > r.lineCapacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, unsafe.Pointer(&lines[0]), gl.DYNAMIC_DRAW)
		r.lineCapacity = len(lines)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 12)
		gl.EnableVertexAttribArray(1)
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, unsafe.Pointer(&lines[0]))
	}
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)))
}

// ReadPixels returns the current framebuffer as RGBA rows, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
