// Package controls turns pointer input into orbit-camera manipulation.
//
// OrbitControls is event driven: it is fed input events from the main loop
// and never registers a per-frame callback.
package controls

import (
	"errors"
	"reflect"

	"github.com/Faultbox/scene-gallery/internal/engine/camera"
	"github.com/Faultbox/scene-gallery/internal/engine/input"
)

// ErrMissingCameraOrSurface is returned when controls are created without a
// camera or input surface.
var ErrMissingCameraOrSurface = errors.New("controls: camera and input surface are required")

// Surface is the area that receives pointer input, typically the window.
type Surface interface {
	Size() (width, height int)
}

type dragMode uint8

const (
	dragNone dragMode = iota
	dragRotate
	dragPan
)

// OrbitControls rotates, pans and zooms an OrbitCamera.
type OrbitControls struct {
	Enabled bool

	cam     *camera.OrbitCamera
	surface Surface
	mode    dragMode
	button  uint8
}

// New binds controls to a camera and surface.
func New(cam *camera.OrbitCamera, surface Surface) (*OrbitControls, error) {
	if cam == nil || isNil(surface) {
		return nil, ErrMissingCameraOrSurface
	}
	return &OrbitControls{Enabled: true, cam: cam, surface: surface}, nil
}

// isNil also catches an interface holding a nil pointer, such as a
// (*window.Window)(nil).
func isNil(surface Surface) bool {
	if surface == nil {
		return true
	}
	v := reflect.ValueOf(surface)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Camera returns the controlled camera.
func (c *OrbitControls) Camera() *camera.OrbitCamera {
	return c.cam
}

// Dragging reports whether a rotate or pan drag is in progress.
func (c *OrbitControls) Dragging() bool {
	return c.mode != dragNone
}

// Handle applies one input event. It reports whether the event changed the camera
// or drag state.
func (c *OrbitControls) Handle(e input.Event) bool {
	if !c.Enabled {
		c.mode = dragNone
		return false
	}

	switch e.Type {
	case input.EventMouseDown:
		if c.mode != dragNone || !c.inside(e.MouseX, e.MouseY) {
			return false
		}
		switch e.Button {
		case input.ButtonLeft:
			c.mode = dragRotate
		case input.ButtonRight, input.ButtonMiddle:
			c.mode = dragPan
		default:
			return false
		}
		c.button = e.Button
		return true

	case input.EventMouseUp:
		if c.mode == dragNone || e.Button != c.button {
			return false
		}
		c.mode = dragNone
		return true

	case input.EventWindowLeave:
		if c.mode == dragNone {
			return false
		}
		c.mode = dragNone
		return true

	case input.EventMouseMove:
		if e.RelX == 0 && e.RelY == 0 {
			return false
		}
		switch c.mode {
		case dragRotate:
			c.cam.HandleDrag(float32(e.RelX), float32(e.RelY))
			return true
		case dragPan:
			c.cam.HandlePan(float32(e.RelX), float32(e.RelY))
			return true
		}

	case input.EventMouseWheel:
		if e.WheelY == 0 {
			return false
		}
		c.cam.HandleZoom(e.WheelY)
		return true
	}
	return false
}

func (c *OrbitControls) inside(x, y int) bool {
	w, h := c.surface.Size()
	return x >= 0 && y >= 0 && x < w && y < h
}
