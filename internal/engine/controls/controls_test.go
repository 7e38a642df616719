package controls

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/scene-gallery/internal/engine/camera"
	"github.com/Faultbox/scene-gallery/internal/engine/input"
	"github.com/Faultbox/scene-gallery/pkg/math"
)

type fixedSurface struct{ w, h int }

func (s fixedSurface) Size() (int, int) { return s.w, s.h }

type windowSurface struct{ w, h int }

func (s *windowSurface) Size() (int, int) { return s.w, s.h }

func newControls(t *testing.T) (*OrbitControls, *camera.OrbitCamera) {
	t.Helper()
	cam := camera.NewOrbitCamera(math.V3(2, 4, 7), math.Vec3{})
	c, err := New(cam, fixedSurface{800, 600})
	require.NoError(t, err)
	return c, cam
}

func TestNewRequiresCameraAndSurface(t *testing.T) {
	cam := camera.NewOrbitCamera(math.V3(0, 0, 5), math.Vec3{})

	_, err := New(nil, fixedSurface{800, 600})
	assert.ErrorIs(t, err, ErrMissingCameraOrSurface)

	_, err = New(cam, nil)
	assert.ErrorIs(t, err, ErrMissingCameraOrSurface)

	var nilSurface Surface
	_, err = New(cam, nilSurface)
	assert.ErrorIs(t, err, ErrMissingCameraOrSurface)

	_, err = New(cam, (*windowSurface)(nil))
	assert.ErrorIs(t, err, ErrMissingCameraOrSurface)

	c, err := New(cam, &windowSurface{800, 600})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestLeftDragRotates(t *testing.T) {
	c, cam := newControls(t)
	yaw, target := cam.Yaw, cam.Target

	assert.True(t, c.Handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, MouseX: 10, MouseY: 10}))
	assert.True(t, c.Dragging())
	assert.True(t, c.Handle(input.Event{Type: input.EventMouseMove, RelX: 20}))
	assert.NotEqual(t, yaw, cam.Yaw)
	assert.Equal(t, target, cam.Target)

	assert.True(t, c.Handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonLeft}))
	assert.False(t, c.Dragging())

	yaw = cam.Yaw
	assert.False(t, c.Handle(input.Event{Type: input.EventMouseMove, RelX: 20}))
	assert.Equal(t, yaw, cam.Yaw)
}

func TestRightDragPans(t *testing.T) {
	c, cam := newControls(t)
	yaw, target := cam.Yaw, cam.Target

	c.Handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonRight, MouseX: 5, MouseY: 5})
	c.Handle(input.Event{Type: input.EventMouseMove, RelX: 15, RelY: -4})
	assert.Equal(t, yaw, cam.Yaw)
	assert.NotEqual(t, target, cam.Target)
}

func TestWheelZooms(t *testing.T) {
	c, cam := newControls(t)
	d := cam.Distance
	assert.True(t, c.Handle(input.Event{Type: input.EventMouseWheel, WheelY: 1}))
	assert.Less(t, cam.Distance, d)
	assert.False(t, c.Handle(input.Event{Type: input.EventMouseWheel}))
}

func TestPressOutsideSurfaceIgnored(t *testing.T) {
	c, _ := newControls(t)
	assert.False(t, c.Handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, MouseX: 900, MouseY: 10}))
	assert.False(t, c.Dragging())
}

func TestLeavingWindowEndsDrag(t *testing.T) {
	c, _ := newControls(t)
	c.Handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonMiddle, MouseX: 1, MouseY: 1})
	assert.True(t, c.Handle(input.Event{Type: input.EventWindowLeave}))
	assert.False(t, c.Dragging())
}

func TestOtherButtonReleaseKeepsDrag(t *testing.T) {
	c, _ := newControls(t)
	c.Handle(input.Event{Type: input.EventMouseDown, Button: input.ButtonLeft, MouseX: 1, MouseY: 1})
	assert.False(t, c.Handle(input.Event{Type: input.EventMouseUp, Button: input.ButtonRight}))
	assert.True(t, c.Dragging())
}

func TestDisabledIgnoresInput(t *testing.T) {
	c, cam := newControls(t)
	c.Enabled = false
	d := cam.Distance
	assert.False(t, c.Handle(input.Event{Type: input.EventMouseWheel, WheelY: 3}))
	assert.Equal(t, d, cam.Distance)
}
